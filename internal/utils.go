package internal

// SecureZero securely zeroes out the given byte slice
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
