// domain/repository/revision_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

// RevisionRepository owns the ordered revision sequence of a note,
// keyed by note id. The sequence is append-only; there is no update or
// single-revision delete.
type RevisionRepository interface {
	Create(revision *models.Revision) error

	// GetLatestByNoteID / GetFirstByNoteID return the newest / oldest
	// revision with authorships loaded, or (nil, nil) when the note
	// has no revisions.
	GetLatestByNoteID(noteID uuid.UUID) (*models.Revision, error)
	GetFirstByNoteID(noteID uuid.UUID) (*models.Revision, error)

	// FindByNoteID returns all revisions in creation order.
	FindByNoteID(noteID uuid.UUID) ([]*models.Revision, error)
	GetByID(noteID, revisionID uuid.UUID) (*models.Revision, error)
}
