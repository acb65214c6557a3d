// infrastructure/persistence/postgres/revision_repository.go
package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
)

type revisionRepository struct {
	db *gorm.DB
}

// NewRevisionRepository creates a new instance of RevisionRepository.
func NewRevisionRepository(db *gorm.DB) repository.RevisionRepository {
	return &revisionRepository{db: db}
}

func (r *revisionRepository) Create(revision *models.Revision) error {
	return r.db.Create(revision).Error
}

func (r *revisionRepository) GetLatestByNoteID(noteID uuid.UUID) (*models.Revision, error) {
	return r.getOrdered(noteID, "created_at DESC")
}

func (r *revisionRepository) GetFirstByNoteID(noteID uuid.UUID) (*models.Revision, error) {
	return r.getOrdered(noteID, "created_at ASC")
}

func (r *revisionRepository) getOrdered(noteID uuid.UUID, order string) (*models.Revision, error) {
	var revision models.Revision
	err := r.db.
		Preload("Authorships").
		Preload("Authorships.User").
		Where("note_id = ?", noteID).
		Order(order).
		First(&revision).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &revision, nil
}

// FindByNoteID returns the note's revisions in creation order.
func (r *revisionRepository) FindByNoteID(noteID uuid.UUID) ([]*models.Revision, error) {
	var revisions []*models.Revision
	err := r.db.
		Where("note_id = ?", noteID).
		Order("created_at ASC").
		Find(&revisions).Error

	if err != nil {
		return nil, err
	}

	return revisions, nil
}

func (r *revisionRepository) GetByID(noteID, revisionID uuid.UUID) (*models.Revision, error) {
	var revision models.Revision
	err := r.db.
		Preload("Authorships").
		Preload("Authorships.User").
		Where("id = ? AND note_id = ?", revisionID, noteID).
		First(&revision).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &revision, nil
}
