// domain/service/projection_service.go
package service

import (
	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

// ProjectionService derives read-only external views from a resolved
// note. Nothing here mutates state.
type ProjectionService interface {
	GetNoteContent(note *models.Note) (string, error)
	ToNotePermissions(note *models.Note) dto.NotePermissions
	ToNoteMetadata(note *models.Note) (dto.NoteMetadata, error)
	ToNoteData(note *models.Note) (dto.NoteData, error)
}
