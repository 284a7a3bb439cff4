package transform

import (
	"github.com/samber/oops"
)

// XORTransformer implements a repeating-key XOR obfuscation transform.
// Encrypt and decrypt are the identical operation since XOR is its own
// inverse.
type XORTransformer struct {
	key     []byte
	keySize int
}

// NewXORTransformer creates a new XOR transformer keyed by the secret.
// The secret is repeated as needed to match the data length.
func NewXORTransformer(secret string) (*XORTransformer, error) {
	if secret == "" {
		return nil, oops.
			Code("EMPTY_SECRET").
			In("transform").
			Errorf("xor transform requires a non-empty secret")
	}

	key := []byte(secret)
	return &XORTransformer{
		key:     key,
		keySize: len(key),
	}, nil
}

// Encrypt XORs every byte of data with the repeating key, in place.
func (xt *XORTransformer) Encrypt(data []byte) error {
	for i := range data {
		data[i] ^= xt.key[i%xt.keySize]
	}
	return nil
}

// Decrypt removes the XOR obfuscation. Since XOR is symmetric, this performs
// the same operation as Encrypt.
func (xt *XORTransformer) Decrypt(data []byte) error {
	return xt.Encrypt(data)
}

// Name returns the registered name of the XOR transformer.
func (xt *XORTransformer) Name() string {
	return NameXOR
}
