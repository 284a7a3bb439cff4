package transform

import (
	"github.com/samber/oops"
)

// aesRounds is the fixed number of substitution rounds. Round count is part
// of the wire contract.
const aesRounds = 3

// AESTransformer implements a layered key-XOR-plus-position substitution
// applied over three rounds. The name is a wire-contract misnomer inherited
// from the format: this is NOT the AES block cipher and offers no
// cryptographic strength.
type AESTransformer struct {
	key     []byte
	keySize int
}

// NewAESTransformer creates a new layered substitution transformer keyed by
// the secret.
func NewAESTransformer(secret string) (*AESTransformer, error) {
	if secret == "" {
		return nil, oops.
			Code("EMPTY_SECRET").
			In("transform").
			Errorf("aes transform requires a non-empty secret")
	}

	key := []byte(secret)
	return &AESTransformer{
		key:     key,
		keySize: len(key),
	}, nil
}

// Encrypt applies three substitution rounds in place, round-major and
// left-to-right: data[i] = ((data[i] XOR key[(i+r) mod m]) + r + i) mod 256.
func (at *AESTransformer) Encrypt(data []byte) error {
	for r := 0; r < aesRounds; r++ {
		for i := range data {
			data[i] = (data[i] ^ at.key[(i+r)%at.keySize]) + byte(r+i)
		}
	}
	return nil
}

// Decrypt inverts Encrypt in place. Rounds compose sequentially, so they are
// undone from last to first; within a round each byte is independent, so the
// per-byte inverse (subtract, then XOR) suffices. Indices are walked from
// last to first to mirror the forward pass exactly.
func (at *AESTransformer) Decrypt(data []byte) error {
	for r := aesRounds - 1; r >= 0; r-- {
		for i := len(data) - 1; i >= 0; i-- {
			data[i] = (data[i] - byte(r+i)) ^ at.key[(i+r)%at.keySize]
		}
	}
	return nil
}

// Name returns the registered name of the layered substitution transformer.
func (at *AESTransformer) Name() string {
	return NameAES
}
