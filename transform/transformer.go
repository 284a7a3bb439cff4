package transform

// Transformer defines the interface for reversible payload transformations.
// Both operations mutate the given slice in place and are deterministic for
// a fixed secret. A transformer never inspects bytes outside the slice it is
// handed. These are obfuscation schemes, not ciphers: none of them provide
// confidentiality, authentication, or integrity.
type Transformer interface {
	// Encrypt transforms data in place.
	Encrypt(data []byte) error

	// Decrypt reverses Encrypt in place.
	Decrypt(data []byte) error

	// Name returns the transformer name for logging and debugging
	Name() string
}
