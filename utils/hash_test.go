package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	// GIVEN
	pw := "S3cr3t!!"

	// WHEN
	hash, err := HashPassword(pw)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// THEN
	assert.True(t, CheckPassword(hash, pw))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHash_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	// bcrypt salts per call; both still verify
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "same-input"))
	assert.True(t, CheckPassword(h2, "same-input"))
}
