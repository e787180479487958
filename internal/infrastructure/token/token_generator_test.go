package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()

	plaintext, hash, err := g.Generate()
	require.NoError(t, err)

	assert.Len(t, plaintext, 64)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, plaintext, hash)
	assert.Equal(t, Hash(plaintext), hash)
}

func TestGenerator_GenerateUnique(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		plaintext, _, err := g.Generate()
		require.NoError(t, err)
		assert.False(t, seen[plaintext])
		seen[plaintext] = true
	}
}

func TestVerify(t *testing.T) {
	g := NewGenerator()

	plaintext, hash, err := g.Generate()
	require.NoError(t, err)

	assert.True(t, Verify(plaintext, hash))
	assert.False(t, Verify("wrong-token", hash))
	assert.False(t, Verify(plaintext, Hash("other")))
}
