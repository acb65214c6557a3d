// infrastructure/persistence/postgres/note_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists the note together with its initial revision, history
// entries and empty grant sets.
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByIDOrAlias resolves by id first, alias second, in one query. The
// id leg only applies when the value parses as a UUID; Postgres would
// otherwise reject the comparison.
func (r *noteRepository) GetByIDOrAlias(idOrAlias string) (*models.Note, error) {
	query := r.db.
		Preload("Owner").
		Preload("UserPermissions").
		Preload("UserPermissions.User").
		Preload("GroupPermissions").
		Preload("GroupPermissions.Group").
		Preload("Tags").
		Preload("AuthorColors").
		Preload("AuthorColors.User")

	if id, err := uuid.Parse(idOrAlias); err == nil {
		query = query.Where("id = ? OR alias = ?", id, idOrAlias)
	} else {
		query = query.Where("alias = ?", idOrAlias)
	}

	var note models.Note
	err := query.First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// Save updates the note row itself. Associations are managed through
// their own repositories and SavePermissions.
func (r *noteRepository) Save(note *models.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Omit(clause.Associations).Save(note).Error
}

// Delete removes the note and everything it owns; revisions,
// permissions and history entries go with it, tag links are detached.
func (r *noteRepository) Delete(note *models.Note) error {
	return r.db.Select(clause.Associations).Delete(note).Error
}

// FindByOwnerID returns all notes owned by the user with the same
// eager relations as GetByIDOrAlias.
func (r *noteRepository) FindByOwnerID(ownerID uuid.UUID) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.
		Preload("Owner").
		Preload("UserPermissions").
		Preload("UserPermissions.User").
		Preload("GroupPermissions").
		Preload("GroupPermissions.Group").
		Preload("Tags").
		Preload("AuthorColors").
		Preload("AuthorColors.User").
		Where("owner_id = ?", ownerID).
		Find(&notes).Error

	if err != nil {
		return nil, err
	}

	return notes, nil
}

// SavePermissions replaces the note's stored grant sets with the ones
// on the struct, in a single transaction. Re-inserted grants keep
// their ids, so updated grants keep their identity.
func (r *noteRepository) SavePermissions(note *models.Note) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", note.ID).Delete(&models.NoteUserPermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", note.ID).Delete(&models.NoteGroupPermission{}).Error; err != nil {
			return err
		}

		if len(note.UserPermissions) > 0 {
			if err := tx.Omit(clause.Associations).Create(&note.UserPermissions).Error; err != nil {
				return err
			}
		}
		if len(note.GroupPermissions) > 0 {
			if err := tx.Omit(clause.Associations).Create(&note.GroupPermissions).Error; err != nil {
				return err
			}
		}

		note.UpdatedAt = time.Now()
		return tx.Omit(clause.Associations).Save(note).Error
	})
}

// IncrementViewCount adds delta to the stored, monotonically growing
// view counter.
func (r *noteRepository) IncrementViewCount(id uuid.UUID, delta int64) error {
	return r.db.Model(&models.Note{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}
