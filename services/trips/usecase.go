package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/titipkan/services/trips TripUC

// TripUC represents the trip usecase interface
type TripUC interface {
	FetchTrips(ctx context.Context) ([]*models.Trip, error)
	FetchTripsByTransporter(ctx context.Context, transporterID uuid.UUID) ([]*models.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	CreateTrip(ctx context.Context, transporterID uuid.UUID, draft *models.TripDraft) (*models.Trip, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID, actor models.Actor) error
}
