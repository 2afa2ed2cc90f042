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
	"github.com/piresc/titipkan/services/session"
)

// Handler invalidates session contexts when parcel or trip events land
type Handler struct {
	sessionUC  session.SessionUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewHandler creates a new session event handler
func NewHandler(sessionUC session.SessionUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		sessionUC:  sessionUC,
		natsClient: natsClient,
	}
}

// InitSubscribers wires the session invalidation subscriptions
func (h *Handler) InitSubscribers() error {
	parcelSubjects := []string{
		constants.SubjectParcelCreated,
		constants.SubjectParcelMatched,
		constants.SubjectParcelStatus,
		constants.SubjectParcelConfirmed,
	}
	for _, subject := range parcelSubjects {
		sub, err := h.natsClient.Subscribe(subject, h.handleParcelEvent)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	for _, subject := range []string{constants.SubjectTripCreated, constants.SubjectTripDeleted} {
		sub, err := h.natsClient.Subscribe(subject, h.handleTripEvent)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	return nil
}

// handleParcelEvent marks both parties' contexts stale
func (h *Handler) handleParcelEvent(msg *nats.Msg) {
	var event models.ParcelEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal parcel event", logger.ErrorField(err))
		return
	}

	ctx := context.Background()
	for _, userID := range []string{event.SenderID, event.TransporterID} {
		if err := h.sessionUC.MarkStale(ctx, userID); err != nil {
			logger.Warn("Failed to mark session stale",
				logger.ErrorField(err),
				logger.String("user_id", userID),
			)
		}
	}
}

// handleTripEvent marks the transporter's context stale
func (h *Handler) handleTripEvent(msg *nats.Msg) {
	var event models.TripEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal trip event", logger.ErrorField(err))
		return
	}

	if err := h.sessionUC.MarkStale(context.Background(), event.TransporterID); err != nil {
		logger.Warn("Failed to mark session stale",
			logger.ErrorField(err),
			logger.String("user_id", event.TransporterID),
		)
	}
}
