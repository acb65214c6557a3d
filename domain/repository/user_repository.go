// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	// GetByUsername returns (nil, nil) when no user carries the name.
	GetByUsername(username string) (*models.User, error)
}
