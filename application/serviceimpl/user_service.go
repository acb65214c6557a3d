// application/serviceimpl/user_service.go
package serviceimpl

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
)

type userService struct {
	userRepo repository.UserRepository
	log      zerolog.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository, log zerolog.Logger) service.UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With().Str("component", "users").Logger(),
	}
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user '%s': %w", username, apperrors.ErrNotInDB)
	}

	return user, nil
}

func (s *userService) ToUserInfo(user *models.User) *dto.UserInfo {
	if user == nil {
		return nil
	}
	return &dto.UserInfo{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		Email:       user.Email,
	}
}
