package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	assert.NoError(t, err)
	assert.NotEqual(t, "p1", hash)
	assert.True(t, CompareHashAndPassword(hash, "p1"))
	assert.False(t, CompareHashAndPassword(hash, "p2"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-secret")
	assert.NoError(t, err)
	h2, err := HashPassword("same-secret")
	assert.NoError(t, err)
	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, h1, h2)
	assert.True(t, CompareHashAndPassword(h1, "same-secret"))
	assert.True(t, CompareHashAndPassword(h2, "same-secret"))
}
