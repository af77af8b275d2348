package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("hunter2")
	require.NoError(t, err)
	h2, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "hunter2", h1)
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("hunter2", hash))
	assert.False(t, VerifyPassword("hunter3", hash))
	assert.False(t, VerifyPassword("", hash))
	// the stored value itself must never verify
	assert.False(t, VerifyPassword(hash, hash))
}
