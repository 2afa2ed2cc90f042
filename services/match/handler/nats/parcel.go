package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/titipkan/internal/pkg/constants"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
	natspkg "github.com/piresc/titipkan/internal/pkg/nats"
	"github.com/piresc/titipkan/services/match"
)

// Handler keeps the pending-parcel area pool in sync with parcel events
type Handler struct {
	matchUC    match.MatchUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewHandler creates a new match event handler
func NewHandler(matchUC match.MatchUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		matchUC:    matchUC,
		natsClient: natsClient,
	}
}

// InitSubscribers wires the pool maintenance subscriptions
func (h *Handler) InitSubscribers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectParcelCreated, h.handleParcelCreated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectParcelCreated, err)
	}
	h.subs = append(h.subs, sub)

	for _, subject := range []string{constants.SubjectParcelMatched, constants.SubjectParcelStatus} {
		sub, err := h.natsClient.Subscribe(subject, h.handleParcelLeftPool)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	return nil
}

// handleParcelCreated tracks new pending parcels in the area pool
func (h *Handler) handleParcelCreated(msg *nats.Msg) {
	var event models.ParcelEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal parcel created event", logger.ErrorField(err))
		return
	}

	if err := h.matchUC.TrackPendingParcel(context.Background(), event); err != nil {
		logger.Error("Failed to track pending parcel",
			logger.ErrorField(err),
			logger.String("parcel_id", event.ParcelID),
		)
	}
}

// handleParcelLeftPool drops parcels from the area pool once they are
// matched or advance past PENDING
func (h *Handler) handleParcelLeftPool(msg *nats.Msg) {
	var event models.ParcelEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal parcel event", logger.ErrorField(err))
		return
	}

	if err := h.matchUC.UntrackParcel(context.Background(), event.ParcelID); err != nil {
		logger.Error("Failed to untrack parcel",
			logger.ErrorField(err),
			logger.String("parcel_id", event.ParcelID),
		)
	}
}
