package usecase

import (
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/match"
)

// MatchUC implements the matching usecase
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	matchGW   match.MatchGW
}

// NewMatchUC creates a new matching usecase
func NewMatchUC(
	cfg *models.Config,
	matchRepo match.MatchRepo,
	matchGW match.MatchGW,
) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		matchGW:   matchGW,
	}
}
