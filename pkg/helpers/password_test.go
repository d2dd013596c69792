package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmelog/cosme-review-api/pkg/helpers"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, helpers.CompareHashAndPassword(hash, "password123"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "password124"))
}

func TestCompareHashAndPassword_MalformedHashIsFalse(t *testing.T) {
	assert.False(t, helpers.CompareHashAndPassword("not-a-bcrypt-hash", "password123"))
	assert.False(t, helpers.CompareHashAndPassword("", "password123"))
}
