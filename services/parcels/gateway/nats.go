package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/titipkan/internal/pkg/constants"
	"github.com/piresc/titipkan/internal/pkg/models"
	natspkg "github.com/piresc/titipkan/internal/pkg/nats"
)

// ParcelGW implements the parcels.ParcelGW interface over NATS
type ParcelGW struct {
	natsClient *natspkg.Client
}

// NewParcelGW creates a new parcel gateway
func NewParcelGW(natsClient *natspkg.Client) *ParcelGW {
	return &ParcelGW{natsClient: natsClient}
}

// PublishParcelCreated publishes a parcel created event
func (g *ParcelGW) PublishParcelCreated(ctx context.Context, event models.ParcelEvent) error {
	return g.publish(constants.SubjectParcelCreated, event)
}

// PublishStatusChanged publishes a parcel status change event
func (g *ParcelGW) PublishStatusChanged(ctx context.Context, event models.ParcelEvent) error {
	return g.publish(constants.SubjectParcelStatus, event)
}

// PublishParcelConfirmed publishes the terminal confirmation event
func (g *ParcelGW) PublishParcelConfirmed(ctx context.Context, event models.ParcelEvent) error {
	return g.publish(constants.SubjectParcelConfirmed, event)
}

func (g *ParcelGW) publish(subject string, event models.ParcelEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal parcel event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	return nil
}
