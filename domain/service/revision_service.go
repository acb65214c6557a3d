// domain/service/revision_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

// RevisionService answers queries over a note's append-only revision
// sequence. All lookups fail with apperrors.ErrNotInDB when the note
// has no matching revision.
type RevisionService interface {
	GetLatestRevision(noteID uuid.UUID) (*models.Revision, error)
	GetFirstRevision(noteID uuid.UUID) (*models.Revision, error)
	GetAllRevisions(noteID uuid.UUID) ([]*models.Revision, error)
	GetRevision(noteID, revisionID uuid.UUID) (*models.Revision, error)
}
