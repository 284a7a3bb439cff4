package transform

import (
	"github.com/samber/oops"

	"github.com/go-i2p/go-envelope/internal/strhash"
)

// CaesarTransformer implements a byte-rotation transform whose shift is
// derived from the secret. The shift is reduced modulo 26 even though bytes
// wrap modulo 256; encoded buffers depend on that exact reduction, so it is
// part of the wire contract and must not be changed.
type CaesarTransformer struct {
	shift byte
}

// NewCaesarTransformer creates a new Caesar transformer with a shift of
// strhash.Sum(secret) mod 26.
func NewCaesarTransformer(secret string) (*CaesarTransformer, error) {
	if secret == "" {
		return nil, oops.
			Code("EMPTY_SECRET").
			In("transform").
			Errorf("caesar transform requires a non-empty secret")
	}

	return &CaesarTransformer{
		shift: byte(strhash.Sum(secret) % 26),
	}, nil
}

// Encrypt adds the shift to every byte, wrapping modulo 256, in place.
func (ct *CaesarTransformer) Encrypt(data []byte) error {
	for i := range data {
		data[i] += ct.shift
	}
	return nil
}

// Decrypt subtracts the shift from every byte, wrapping modulo 256, in place.
func (ct *CaesarTransformer) Decrypt(data []byte) error {
	for i := range data {
		data[i] -= ct.shift
	}
	return nil
}

// Name returns the registered name of the Caesar transformer.
func (ct *CaesarTransformer) Name() string {
	return NameCaesar
}

// Shift exposes the derived shift for diagnostics and tests.
func (ct *CaesarTransformer) Shift() byte {
	return ct.shift
}
