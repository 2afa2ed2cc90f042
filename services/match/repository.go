package match

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/titipkan/services/match MatchRepo

// MatchRepo represents the matching repository interface
type MatchRepo interface {
	// AssignTransporter performs the claim as a single conditional
	// update. It returns ErrAlreadyAssigned when another transporter
	// committed first.
	AssignTransporter(ctx context.Context, parcelID, transporterID uuid.UUID, tripID *uuid.UUID) (*models.Parcel, error)

	GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)

	// Pending-parcel area pool
	AddPendingParcel(ctx context.Context, parcelID string, lat, lng float64) error
	RemovePendingParcel(ctx context.Context, parcelID string) error
	FindNearbyPending(ctx context.Context, lat, lng, radiusKm float64) ([]*models.NearbyParcel, error)
}
