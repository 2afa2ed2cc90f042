package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// ReviewRepo handles review persistence
type ReviewRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewReviewRepo(
	cfg *models.Config,
	db *sqlx.DB,
) *ReviewRepo {
	return &ReviewRepo{
		cfg: cfg,
		db:  db,
	}
}
