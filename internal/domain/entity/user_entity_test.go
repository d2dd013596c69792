package entity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmelog/cosme-review-api/internal/domain/entity"
)

func TestNewUser_HashesPassword(t *testing.T) {
	u, err := entity.NewUser("Alice", "alice@example.com", "password123", func(p string) (string, error) {
		return "hashed:" + p, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "hashed:password123", u.PasswordHash)
	assert.Equal(t, int64(0), u.ID)
}

func TestNewUser_FailsOnlyWhenHashFails(t *testing.T) {
	boom := errors.New("boom")
	u, err := entity.NewUser("Alice", "alice@example.com", "password123", func(string) (string, error) {
		return "", boom
	})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, boom)
}
