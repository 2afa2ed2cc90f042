package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/titipkan/internal/pkg/database"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// ParcelRepo implements the parcels.ParcelRepo interface
type ParcelRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewParcelRepo creates a new parcel repository
func NewParcelRepo(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *ParcelRepo {
	return &ParcelRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
