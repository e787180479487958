// Package id generates Stripe-style prefixed public identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for the public IDs of each entity type.
const (
	PrefixProduct     = "prod"
	PrefixVersion     = "ver"
	PrefixFile        = "file"
	PrefixOrder       = "ord"
	PrefixEntitlement = "ent"
	PrefixReview      = "rev"
	PrefixUpload      = "up"
)

// Generate creates a cryptographically random, URL-safe Base62 ID.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidatePrefix checks that sid carries the expected prefix and a non-empty body.
func ValidatePrefix(sid, prefix string) error {
	want := prefix + "_"
	if !strings.HasPrefix(sid, want) {
		return fmt.Errorf("id %q does not have prefix %q", sid, prefix)
	}
	if len(sid) <= len(want) {
		return fmt.Errorf("id %q has an empty body", sid)
	}
	return nil
}
