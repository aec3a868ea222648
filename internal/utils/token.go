package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenByteLength is the number of random bytes backing a bearer token.
// The hex encoding doubles it to a 64-character credential.
const tokenByteLength = 32

// GenerateToken produces a new opaque bearer token drawn from the
// operating system's cryptographically secure random source.
//
// Tokens carry no embedded claims; they are pure random identifiers whose
// meaning lives entirely in the users table. Uniqueness is enforced by the
// store's unique constraint, with the caller retrying on collision.
func GenerateToken() (string, error) {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes for token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
