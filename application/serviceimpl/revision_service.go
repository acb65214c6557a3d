// application/serviceimpl/revision_service.go
package serviceimpl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
)

type revisionService struct {
	revisionRepo repository.RevisionRepository
	log          zerolog.Logger
}

// NewRevisionService creates a new instance of RevisionService.
func NewRevisionService(revisionRepo repository.RevisionRepository, log zerolog.Logger) service.RevisionService {
	return &revisionService{
		revisionRepo: revisionRepo,
		log:          log.With().Str("component", "revisions").Logger(),
	}
}

// GetLatestRevision returns the newest snapshot of the note.
func (s *revisionService) GetLatestRevision(noteID uuid.UUID) (*models.Revision, error) {
	revision, err := s.revisionRepo.GetLatestByNoteID(noteID)
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, fmt.Errorf("latest revision of note '%s': %w", noteID, apperrors.ErrNotInDB)
	}

	return revision, nil
}

// GetFirstRevision returns the snapshot the note was created with.
func (s *revisionService) GetFirstRevision(noteID uuid.UUID) (*models.Revision, error) {
	revision, err := s.revisionRepo.GetFirstByNoteID(noteID)
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, fmt.Errorf("first revision of note '%s': %w", noteID, apperrors.ErrNotInDB)
	}

	return revision, nil
}

// GetAllRevisions returns the note's full history in creation order.
func (s *revisionService) GetAllRevisions(noteID uuid.UUID) ([]*models.Revision, error) {
	return s.revisionRepo.FindByNoteID(noteID)
}

// GetRevision returns one revision of the note by its id.
func (s *revisionService) GetRevision(noteID, revisionID uuid.UUID) (*models.Revision, error) {
	revision, err := s.revisionRepo.GetByID(noteID, revisionID)
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, fmt.Errorf("revision '%s' of note '%s': %w", revisionID, noteID, apperrors.ErrNotInDB)
	}

	return revision, nil
}
