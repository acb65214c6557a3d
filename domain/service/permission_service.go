// domain/service/permission_service.go
package service

import (
	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

// PermissionService reconciles a desired-state permission update
// against a note's stored grants.
type PermissionService interface {
	// UpdateNotePermissions validates the desired state (a grantee may
	// appear only once per list, otherwise
	// apperrors.ErrPermissionsUpdateInconsistent), then updates
	// matching grants in place and appends grants for unknown
	// grantees. An empty desired list wipes the corresponding grant
	// type entirely; a non-empty list never removes omitted grantees.
	UpdateNotePermissions(idOrAlias string, update dto.NotePermissionsUpdate) (*models.Note, error)
}
