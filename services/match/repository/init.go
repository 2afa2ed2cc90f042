package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/titipkan/internal/pkg/database"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// MatchRepo handles parcel assignment and the pending-parcel area pool
type MatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

func NewMatchRepo(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MatchRepo {
	return &MatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
