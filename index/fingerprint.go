package index

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint identifies document content by its sha3-256 sum. Fingerprints
// are comparable: two documents are byte identical exactly when their
// fingerprints are ==. The zero Fingerprint identifies no content.
type Fingerprint [32]byte

// Sum returns the fingerprint of the given content.
func Sum(content []byte) Fingerprint {
	return Fingerprint(sha3.Sum256(content))
}

// IsZero reports whether f is the zero Fingerprint.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// String returns the hex form of the fingerprint, used as the storage key.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}
