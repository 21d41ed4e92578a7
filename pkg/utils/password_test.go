package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPasswordWorksForOTPCodes(t *testing.T) {
	hash, err := HashPassword("482913")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("482913", hash))
	assert.False(t, CheckPasswordHash("482914", hash))
}

func TestCheckPasswordHashRejectsGarbageHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}
