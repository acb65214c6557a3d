// domain/service/note_service.go
package service

import (
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

// NoteService owns note identity and lifecycle: creation, id-or-alias
// resolution, content updates and deletion.
type NoteService interface {
	// CreateNote builds and persists a new note with exactly one
	// initial revision. Alias and owner are optional; with an owner a
	// history entry for that user is created alongside.
	CreateNote(content string, alias *string, owner *models.User) (*models.Note, error)

	// GetNoteByIDOrAlias fails with apperrors.ErrNotInDB when no note
	// matches.
	GetNoteByIDOrAlias(idOrAlias string) (*models.Note, error)
	UpdateNoteByIDOrAlias(idOrAlias, content string) (*models.Note, error)
	DeleteNoteByIDOrAlias(idOrAlias string) error

	// Query operations
	GetUserNotes(owner *models.User) ([]*models.Note, error)
	GetNoteContentByIDOrAlias(idOrAlias string) (string, error)

	// ToTagList returns the note's tag names in storage order, without
	// deduplication.
	ToTagList(note *models.Note) []string
}
