package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/titipkan/internal/pkg/constants"
	"github.com/piresc/titipkan/internal/pkg/models"
	natspkg "github.com/piresc/titipkan/internal/pkg/nats"
)

// MatchGW implements the match.MatchGW interface over NATS
type MatchGW struct {
	natsClient *natspkg.Client
}

// NewMatchGW creates a new match gateway
func NewMatchGW(natsClient *natspkg.Client) *MatchGW {
	return &MatchGW{natsClient: natsClient}
}

// PublishParcelMatched publishes a parcel matched event
func (g *MatchGW) PublishParcelMatched(ctx context.Context, event models.ParcelEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal parcel event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectParcelMatched, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", constants.SubjectParcelMatched, err)
	}

	return nil
}
