package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/titipkan/services/trips TripRepo

// TripRepo represents the trip repository interface
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	FetchTrips(ctx context.Context) ([]*models.Trip, error)
	FetchTripsByTransporter(ctx context.Context, transporterID uuid.UUID) ([]*models.Trip, error)
	CountActiveParcels(ctx context.Context, tripID uuid.UUID) (int, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID, transporterID uuid.UUID) error
}
