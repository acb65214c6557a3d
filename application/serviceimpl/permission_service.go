// application/serviceimpl/permission_service.go
package serviceimpl

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
	"github.com/inkpad/gofiber-notes-api/pkg/keylock"
)

type permissionService struct {
	notes     service.NoteService
	noteRepo  repository.NoteRepository
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
	locks     *keylock.KeyLock
	log       zerolog.Logger
}

// NewPermissionService creates a new instance of PermissionService.
func NewPermissionService(
	notes service.NoteService,
	noteRepo repository.NoteRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	locks *keylock.KeyLock,
	log zerolog.Logger,
) service.PermissionService {
	return &permissionService{
		notes:     notes,
		noteRepo:  noteRepo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
		locks:     locks,
		log:       log.With().Str("component", "permissions").Logger(),
	}
}

// UpdateNotePermissions reconciles the desired grant state against the
// note's stored grants.
//
// Grants named in the desired lists are updated in place when they
// exist and appended otherwise. Stored grants absent from a non-empty
// desired list are left alone; only a fully empty desired list clears
// that grant type. The whole result is persisted in one save.
func (s *permissionService) UpdateNotePermissions(idOrAlias string, update dto.NotePermissionsUpdate) (*models.Note, error) {
	note, err := s.notes.GetNoteByIDOrAlias(idOrAlias)
	if err != nil {
		return nil, err
	}

	// Reject the request before touching anything when a grantee shows
	// up more than once.
	if hasDuplicateUsers(update.SharedToUsers) || hasDuplicateGroups(update.SharedToGroups) {
		return nil, fmt.Errorf(
			"permission update for note '%s' names the same user or group multiple times: %w",
			idOrAlias, apperrors.ErrPermissionsUpdateInconsistent,
		)
	}

	s.locks.Lock(note.ID.String())
	defer s.locks.Unlock(note.ID.String())

	// Re-read under the lock so a concurrent update cannot be lost.
	note, err = s.notes.GetNoteByIDOrAlias(note.ID.String())
	if err != nil {
		return nil, err
	}

	if err := s.reconcileUserGrants(note, update.SharedToUsers); err != nil {
		return nil, err
	}
	if err := s.reconcileGroupGrants(note, update.SharedToGroups); err != nil {
		return nil, err
	}

	if len(update.SharedToUsers) == 0 {
		note.UserPermissions = []*models.NoteUserPermission{}
	}
	if len(update.SharedToGroups) == 0 {
		note.GroupPermissions = []*models.NoteGroupPermission{}
	}

	if err := s.noteRepo.SavePermissions(note); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("note", note.ID.String()).
		Int("user_grants", len(note.UserPermissions)).
		Int("group_grants", len(note.GroupPermissions)).
		Msg("permissions reconciled")

	return note, nil
}

// reconcileUserGrants walks the desired user grants: a grant for an
// already-known user is updated in place, keeping its identity; an
// unknown user is resolved through the directory and appended.
func (s *permissionService) reconcileUserGrants(note *models.Note, desired []dto.NoteUserPermissionUpdate) error {
	for _, want := range desired {
		var found *models.NoteUserPermission
		for _, permission := range note.UserPermissions {
			if permission.User != nil && permission.User.Username == want.Username {
				found = permission
				break
			}
		}

		if found != nil {
			found.CanEdit = want.CanEdit
			found.UpdatedAt = time.Now()
			continue
		}

		user, err := s.userRepo.GetByUsername(want.Username)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user '%s': %w", want.Username, apperrors.ErrNotInDB)
		}
		note.UserPermissions = append(note.UserPermissions, models.NewNoteUserPermission(note.ID, user, want.CanEdit))
	}

	return nil
}

// reconcileGroupGrants mirrors reconcileUserGrants for groups. A name
// the directory cannot resolve still produces a grant; the group
// reference stays unset and the name alone carries its identity.
func (s *permissionService) reconcileGroupGrants(note *models.Note, desired []dto.NoteGroupPermissionUpdate) error {
	for _, want := range desired {
		var found *models.NoteGroupPermission
		for _, permission := range note.GroupPermissions {
			if permission.GroupName == want.GroupName {
				found = permission
				break
			}
		}

		if found != nil {
			found.CanEdit = want.CanEdit
			found.UpdatedAt = time.Now()
			continue
		}

		group, err := s.groupRepo.GetByName(want.GroupName)
		if err != nil {
			return err
		}
		note.GroupPermissions = append(note.GroupPermissions, models.NewNoteGroupPermission(note.ID, want.GroupName, group, want.CanEdit))
	}

	return nil
}

func hasDuplicateUsers(desired []dto.NoteUserPermissionUpdate) bool {
	seen := make(map[string]struct{}, len(desired))
	for _, want := range desired {
		if _, ok := seen[want.Username]; ok {
			return true
		}
		seen[want.Username] = struct{}{}
	}
	return false
}

func hasDuplicateGroups(desired []dto.NoteGroupPermissionUpdate) bool {
	seen := make(map[string]struct{}, len(desired))
	for _, want := range desired {
		if _, ok := seen[want.GroupName]; ok {
			return true
		}
		seen[want.GroupName] = struct{}{}
	}
	return false
}
