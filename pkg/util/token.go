package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateShareToken returns a URL-safe random token of n bytes of
// entropy, hex encoded. Used by the seed tool; production tokens are
// minted by the mobile backend.
func GenerateShareToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
