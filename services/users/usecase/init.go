package usecase

import (
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	userRepo users.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
