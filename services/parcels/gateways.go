package parcels

import (
	"context"

	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/titipkan/services/parcels ParcelGW

// ParcelGW represents the parcel gateway interface for publishing
// lifecycle events
type ParcelGW interface {
	PublishParcelCreated(ctx context.Context, event models.ParcelEvent) error
	PublishStatusChanged(ctx context.Context, event models.ParcelEvent) error
	PublishParcelConfirmed(ctx context.Context, event models.ParcelEvent) error
}
