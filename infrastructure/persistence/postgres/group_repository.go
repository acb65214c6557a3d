// infrastructure/persistence/postgres/group_repository.go
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
)

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

func (r *groupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	err := r.db.Where("name = ?", name).First(&group).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &group, nil
}
