package model

// Hasher hashes and verifies passwords. Implementations must never make the
// plaintext recoverable from the digest.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
