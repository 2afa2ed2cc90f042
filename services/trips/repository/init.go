package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// TripRepo handles trip persistence
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTripRepo(
	cfg *models.Config,
	db *sqlx.DB,
) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}
