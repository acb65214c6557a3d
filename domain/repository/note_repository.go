// domain/repository/note_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

type NoteRepository interface {
	// CRUD operations
	Create(note *models.Note) error
	// GetByIDOrAlias resolves a note by id first, alias second, in a
	// single query, with owner, permissions, tags and author colors
	// eagerly loaded. Returns (nil, nil) when no note matches.
	GetByIDOrAlias(idOrAlias string) (*models.Note, error)
	Save(note *models.Note) error
	Delete(note *models.Note) error

	// Query operations
	FindByOwnerID(ownerID uuid.UUID) ([]*models.Note, error)

	// SavePermissions atomically persists the note together with its
	// reconciled grant sets, removing stored grants that are no longer
	// present on the note.
	SavePermissions(note *models.Note) error

	// IncrementViewCount adds delta to the stored view counter.
	IncrementViewCount(id uuid.UUID, delta int64) error
}
