package match

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/titipkan/services/match MatchUC

// MatchUC represents the matching usecase interface
type MatchUC interface {
	// DirectAccept claims a pending parcel for the acting transporter.
	// The first transporter to commit wins; later claims get
	// ErrAlreadyAssigned.
	DirectAccept(ctx context.Context, parcelID uuid.UUID, actor models.Actor) (*models.MatchResult, error)

	// AssignFromTrip lets a sender attach their own pending parcel to a
	// published trip, assigning the trip's transporter.
	AssignFromTrip(ctx context.Context, parcelID uuid.UUID, tripID uuid.UUID, actor models.Actor) (*models.MatchResult, error)

	// NearbyPending lists pending parcels near a point for transporter
	// browsing.
	NearbyPending(ctx context.Context, actor models.Actor, lat, lng float64) ([]*models.NearbyParcel, error)

	// TrackPendingParcel adds a freshly created parcel to the area pool
	TrackPendingParcel(ctx context.Context, event models.ParcelEvent) error

	// UntrackParcel drops a parcel from the area pool once it leaves PENDING
	UntrackParcel(ctx context.Context, parcelID string) error
}
