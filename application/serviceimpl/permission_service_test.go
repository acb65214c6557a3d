package serviceimpl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
)

func userGrant(username string, canEdit bool) dto.NoteUserPermissionUpdate {
	return dto.NoteUserPermissionUpdate{Username: username, CanEdit: canEdit}
}

func groupGrant(name string, canEdit bool) dto.NoteGroupPermissionUpdate {
	return dto.NoteGroupPermissionUpdate{GroupName: name, CanEdit: canEdit}
}

func TestUpdatePermissionsRejectsDuplicateUser(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	// seed an existing grant so we can verify nothing changed
	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("alice", true)},
	})
	require.NoError(t, err)

	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{
			userGrant("alice", true),
			userGrant("alice", false),
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionsUpdateInconsistent))

	// stored grants untouched
	stored, err := env.notes.GetNoteByIDOrAlias(note.ID.String())
	require.NoError(t, err)
	require.Len(t, stored.UserPermissions, 1)
	assert.True(t, stored.UserPermissions[0].CanEdit)
}

func TestUpdatePermissionsRejectsDuplicateGroup(t *testing.T) {
	env := newTestEnv()
	env.store.addGroup("team")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToGroups: []dto.NoteGroupPermissionUpdate{
			groupGrant("team", true),
			groupGrant("team", true),
		},
	})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionsUpdateInconsistent))

	stored, err := env.notes.GetNoteByIDOrAlias(note.ID.String())
	require.NoError(t, err)
	assert.Empty(t, stored.GroupPermissions)
}

func TestUpdatePermissionsAddsNewUserGrant(t *testing.T) {
	env := newTestEnv()
	alice := env.store.addUser("alice")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	updated, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("alice", true)},
	})
	require.NoError(t, err)

	require.Len(t, updated.UserPermissions, 1)
	assert.Equal(t, alice.ID, updated.UserPermissions[0].UserID)
	assert.True(t, updated.UserPermissions[0].CanEdit)
}

func TestUpdatePermissionsUpdatesExistingGrantInPlace(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice")
	env.store.addUser("bob")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	first, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{
			userGrant("alice", true),
			userGrant("bob", true),
		},
	})
	require.NoError(t, err)
	require.Len(t, first.UserPermissions, 2)
	aliceGrantID := first.UserPermissions[0].ID

	second, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("alice", false)},
	})
	require.NoError(t, err)

	// both grants remain, alice's keeps its identity and position
	require.Len(t, second.UserPermissions, 2)
	assert.Equal(t, aliceGrantID, second.UserPermissions[0].ID)
	assert.False(t, second.UserPermissions[0].CanEdit)
	assert.True(t, second.UserPermissions[1].CanEdit)
}

func TestUpdatePermissionsSequenceEndsWithSingleGrant(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("alice", true)},
	})
	require.NoError(t, err)

	updated, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("alice", false)},
	})
	require.NoError(t, err)

	require.Len(t, updated.UserPermissions, 1)
	assert.False(t, updated.UserPermissions[0].CanEdit)
}

func TestUpdatePermissionsEmptyUserListWipesUserGrantsOnly(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice")
	env.store.addGroup("team")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers:  []dto.NoteUserPermissionUpdate{userGrant("alice", true)},
		SharedToGroups: []dto.NoteGroupPermissionUpdate{groupGrant("team", true)},
	})
	require.NoError(t, err)

	updated, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers:  []dto.NoteUserPermissionUpdate{},
		SharedToGroups: []dto.NoteGroupPermissionUpdate{groupGrant("team", false)},
	})
	require.NoError(t, err)

	assert.Empty(t, updated.UserPermissions)
	require.Len(t, updated.GroupPermissions, 1)
	assert.False(t, updated.GroupPermissions[0].CanEdit)
}

func TestUpdatePermissionsNonEmptyListKeepsOmittedGrantees(t *testing.T) {
	env := newTestEnv()
	env.store.addUser("alice")
	env.store.addUser("bob")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("alice", true)},
	})
	require.NoError(t, err)

	// bob's grant is added; alice stays even though she is omitted
	updated, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("bob", false)},
	})
	require.NoError(t, err)

	require.Len(t, updated.UserPermissions, 2)
	usernames := []string{
		updated.UserPermissions[0].User.Username,
		updated.UserPermissions[1].User.Username,
	}
	assert.Equal(t, []string{"alice", "bob"}, usernames)
}

func TestUpdatePermissionsUnknownUserFails(t *testing.T) {
	env := newTestEnv()

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	_, err = env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToUsers: []dto.NoteUserPermissionUpdate{userGrant("ghost", true)},
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotInDB))
}

func TestUpdatePermissionsUnresolvedGroupStillGranted(t *testing.T) {
	env := newTestEnv()

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	updated, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToGroups: []dto.NoteGroupPermissionUpdate{groupGrant("phantoms", true)},
	})
	require.NoError(t, err)

	require.Len(t, updated.GroupPermissions, 1)
	assert.Nil(t, updated.GroupPermissions[0].GroupID)
	assert.Equal(t, "phantoms", updated.GroupPermissions[0].GroupName)

	// a second desired state for the same name updates, not duplicates
	again, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToGroups: []dto.NoteGroupPermissionUpdate{groupGrant("phantoms", false)},
	})
	require.NoError(t, err)

	require.Len(t, again.GroupPermissions, 1)
	assert.False(t, again.GroupPermissions[0].CanEdit)
}

func TestUpdatePermissionsResolvedGroupCarriesReference(t *testing.T) {
	env := newTestEnv()
	team := env.store.addGroup("team")

	note, err := env.notes.CreateNote("content", nil, nil)
	require.NoError(t, err)

	updated, err := env.permissions.UpdateNotePermissions(note.ID.String(), dto.NotePermissionsUpdate{
		SharedToGroups: []dto.NoteGroupPermissionUpdate{groupGrant("team", true)},
	})
	require.NoError(t, err)

	require.Len(t, updated.GroupPermissions, 1)
	require.NotNil(t, updated.GroupPermissions[0].GroupID)
	assert.Equal(t, team.ID, *updated.GroupPermissions[0].GroupID)
}

func TestUpdatePermissionsNoteNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.permissions.UpdateNotePermissions("missing", dto.NotePermissionsUpdate{})
	assert.True(t, errors.Is(err, apperrors.ErrNotInDB))
}
