package match

import (
	"context"

	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/titipkan/services/match MatchGW

// MatchGW represents the matching gateway interface
type MatchGW interface {
	PublishParcelMatched(ctx context.Context, event models.ParcelEvent) error
}
