// Package token generates opaque session tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// New returns a new unguessable session token: 32 random bytes, hex-encoded.
func New() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
