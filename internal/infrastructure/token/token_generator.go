package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// Generator produces opaque hex tokens. Only the SHA-256 hash is stored;
// the plaintext is handed to the caller once and never persisted.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a plaintext token and its hex-encoded SHA-256 hash.
func (g *Generator) Generate() (plaintext, hash string, err error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}
	plaintext = hex.EncodeToString(buf)
	return plaintext, Hash(plaintext), nil
}

// Hash returns the hex-encoded SHA-256 digest of a plaintext token.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify compares a plaintext token against a stored hash in constant time.
func Verify(plaintext, storedHash string) bool {
	computed := Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
