package security

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ownerTokenBytes is the entropy of an owner token; hex doubles its length.
const ownerTokenBytes = 32

// GenerateOwnerToken returns a new random owner token: 32 bytes from
// crypto/rand, hex encoded. Uniqueness is enforced by storage; the caller
// regenerates on a collision rather than assuming one cannot happen.
func GenerateOwnerToken() (string, error) {
	b := make([]byte, ownerTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate owner token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// TokenEqual compares a presented token against the stored one in constant
// time. An empty stored token never matches.
func TokenEqual(presented, stored string) bool {
	if stored == "" {
		return false
	}
	return hmac.Equal([]byte(presented), []byte(stored))
}
