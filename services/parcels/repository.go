package parcels

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/titipkan/services/parcels ParcelRepo

// ParcelRepo represents the parcel repository interface
type ParcelRepo interface {
	FetchParcels(ctx context.Context, role models.Role, userID uuid.UUID) ([]*models.Parcel, error)
	GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error)
	GetParcelByTrackingCode(ctx context.Context, code string) (*models.Parcel, error)
	CreateParcel(ctx context.Context, parcel *models.Parcel) (*models.Parcel, error)

	// UpdateParcelStatus is the sole status-mutation primitive. The write is
	// conditional on the expected current status; a concurrent change makes
	// it affect zero rows and the call fails without mutating anything.
	UpdateParcelStatus(ctx context.Context, id uuid.UUID, from, to models.ParcelStatus) error
}
