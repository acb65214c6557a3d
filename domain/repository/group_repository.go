// domain/repository/group_repository.go
package repository

import (
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

type GroupRepository interface {
	Create(group *models.Group) error
	// GetByName returns (nil, nil) when no group carries the name.
	GetByName(name string) (*models.Group, error)
}
