// domain/service/user_service.go
package service

import (
	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
)

type UserService interface {
	// GetUserByUsername fails with apperrors.ErrNotInDB for unknown
	// names.
	GetUserByUsername(username string) (*models.User, error)
	ToUserInfo(user *models.User) *dto.UserInfo
}
