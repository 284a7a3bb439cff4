package envelope

import (
	"github.com/samber/oops"

	"github.com/go-i2p/go-envelope/transform"
)

// PackerConfig contains configuration for creating a Packer.
// It follows the builder pattern for optional configuration and validation.
type PackerConfig struct {
	// Secret is the transform secret shared between sender and receiver.
	// Required when Method is set, forbidden otherwise.
	Secret string

	// Method is the transform method name ("xor", "aes" or "caesar").
	// Required when Secret is set, forbidden otherwise. Leave both empty
	// for a plaintext packer.
	Method string

	// Codec serializes payload values. Default: JSON.
	Codec PayloadCodec
}

// NewPackerConfig creates a new PackerConfig with sensible defaults:
// no transform, JSON payloads.
func NewPackerConfig() *PackerConfig {
	return &PackerConfig{
		Codec: JSONCodec(),
	}
}

// WithSecret sets the transform secret.
func (c *PackerConfig) WithSecret(secret string) *PackerConfig {
	c.Secret = secret
	return c
}

// WithMethod sets the transform method name.
func (c *PackerConfig) WithMethod(method string) *PackerConfig {
	c.Method = method
	return c
}

// WithPayloadCodec sets the payload codec used for pack and unpack.
func (c *PackerConfig) WithPayloadCodec(codec PayloadCodec) *PackerConfig {
	c.Codec = codec
	return c
}

// Validate checks if the configuration is valid and complete.
// Returns an error with context if validation fails.
func (c *PackerConfig) Validate() error {
	if err := c.validatePairing(); err != nil {
		return err
	}

	if err := c.validateMethod(); err != nil {
		return err
	}

	return nil
}

// validatePairing checks that secret and method are configured together.
func (c *PackerConfig) validatePairing() error {
	if (c.Secret == "") != (c.Method == "") {
		return oops.
			Code(CodeConfigError).
			In("envelope").
			With("has_secret", c.Secret != "").
			With("has_method", c.Method != "").
			Errorf("secret and method must be provided together or not at all")
	}
	return nil
}

// validateMethod checks that a configured method exists in the registry.
func (c *PackerConfig) validateMethod() error {
	if c.Method == "" {
		return nil
	}

	if transform.CodeForName(c.Method) == transform.CodeNone {
		return oops.
			Code(CodeUnsupportedMethod).
			In("envelope").
			With("method", c.Method).
			With("supported", transform.Names()).
			Errorf("unsupported transform method %q", c.Method)
	}
	return nil
}
