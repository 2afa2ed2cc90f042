package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// UserRepo implements the users.UserRepo interface
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
