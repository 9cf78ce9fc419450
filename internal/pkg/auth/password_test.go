package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cure-password", hash)

	t.Run("correct password matches", func(t *testing.T) {
		assert.True(t, CheckPassword(hash, "s3cure-password"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		assert.False(t, CheckPassword(hash, "wrong-password"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := HashPassword("s3cure-password")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}
