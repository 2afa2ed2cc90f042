package parcels

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/titipkan/services/parcels ParcelUC

// ParcelUC represents the parcel usecase interface
type ParcelUC interface {
	// collection reads, scoped by the caller's role
	FetchParcels(ctx context.Context, role models.Role, userID uuid.UUID) ([]*models.Parcel, error)
	GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error)

	// creation from a validated draft
	CreateParcel(ctx context.Context, senderID uuid.UUID, draft *models.ParcelDraft) (*models.Parcel, error)

	// public tracking lookup; returns (nil, nil) when the code is unknown
	TrackByCode(ctx context.Context, code string) (*models.Parcel, error)

	// lifecycle engine
	CanAdvance(parcel *models.Parcel, actor models.Actor) bool
	Advance(ctx context.Context, parcelID uuid.UUID, actor models.Actor) (*models.Parcel, error)
	Confirm(ctx context.Context, parcelID uuid.UUID, actor models.Actor) (*models.Parcel, error)
}
