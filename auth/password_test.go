package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password1")
	require.NoError(t, err)
	assert.NotEqual(t, "Password1", hash)

	assert.True(t, CheckPassword(hash, "Password1"))
	assert.False(t, CheckPassword(hash, "password1"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("Password1")
	require.NoError(t, err)
	b, err := HashPassword("Password1")
	require.NoError(t, err)

	// Same input, different salt, different hash.
	assert.NotEqual(t, a, b)
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "Password1"))
}
