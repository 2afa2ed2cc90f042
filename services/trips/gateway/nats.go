package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/titipkan/internal/pkg/constants"
	"github.com/piresc/titipkan/internal/pkg/models"
	natspkg "github.com/piresc/titipkan/internal/pkg/nats"
)

// TripGW implements the trips.TripGW interface over NATS
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip gateway
func NewTripGW(natsClient *natspkg.Client) *TripGW {
	return &TripGW{natsClient: natsClient}
}

// PublishTripCreated publishes a trip created event
func (g *TripGW) PublishTripCreated(ctx context.Context, trip *models.Trip) error {
	return g.publish(constants.SubjectTripCreated, models.TripEvent{
		TripID:        trip.ID.String(),
		TransporterID: trip.TransporterID.String(),
		OccurredAt:    time.Now(),
	})
}

// PublishTripDeleted publishes a trip deleted event
func (g *TripGW) PublishTripDeleted(ctx context.Context, trip *models.Trip) error {
	return g.publish(constants.SubjectTripDeleted, models.TripEvent{
		TripID:        trip.ID.String(),
		TransporterID: trip.TransporterID.String(),
		Deleted:       true,
		OccurredAt:    time.Now(),
	})
}

func (g *TripGW) publish(subject string, event models.TripEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trip event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	return nil
}
