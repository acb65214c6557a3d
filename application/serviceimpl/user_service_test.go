package serviceimpl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
)

func TestGetUserByUsername(t *testing.T) {
	env := newTestEnv()
	alice := env.store.addUser("alice")

	user, err := env.users.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	_, err = env.users.GetUserByUsername("nobody")
	assert.True(t, errors.Is(err, apperrors.ErrNotInDB))
}

func TestToUserInfo(t *testing.T) {
	env := newTestEnv()

	assert.Nil(t, env.users.ToUserInfo(nil))

	alice := env.store.addUser("alice")
	alice.DisplayName = "Alice"
	info := env.users.ToUserInfo(alice)
	require.NotNil(t, info)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "Alice", info.DisplayName)
}
