package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNChar(t *testing.T) {
	for _, n := range []int{1, 8, 21, 32} {
		got, err := GenerateNChar(n)
		require.NoError(t, err)
		assert.Len(t, got, n)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("demo123")
	require.NoError(t, err)
	assert.NotEqual(t, "demo123", hash)

	assert.True(t, ComparePassword(hash, "demo123"))
	assert.False(t, ComparePassword(hash, "wrong-password"))
}
