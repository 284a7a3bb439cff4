// Package strhash provides the deterministic string hash used to derive
// transform parameters. It is stable across versions by contract: encoded
// buffers depend on it, so the algorithm must never change.
package strhash

// Sum returns a 32-bit accumulator hash of s: h = h*31 + codePoint for each
// code point in order, with natural uint32 wraparound. The empty string
// hashes to 0. This is NOT a cryptographic hash and is never used for
// integrity checking.
func Sum(s string) uint32 {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return h
}
