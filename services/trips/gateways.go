package trips

import (
	"context"

	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/titipkan/services/trips TripGW

// TripGW represents the trip gateway interface
type TripGW interface {
	PublishTripCreated(ctx context.Context, trip *models.Trip) error
	PublishTripDeleted(ctx context.Context, trip *models.Trip) error
}
