package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// DirectAccept claims a pending parcel for the acting transporter.
// Whoever commits the conditional update first wins the parcel.
func (u *MatchUC) DirectAccept(ctx context.Context, parcelID uuid.UUID, actor models.Actor) (*models.MatchResult, error) {
	if actor.Role != models.RoleTransporter {
		return nil, pkgerrors.ErrUnauthorized
	}

	parcel, err := u.matchRepo.AssignTransporter(ctx, parcelID, actor.ID, nil)
	if err != nil {
		return nil, err
	}

	u.finishMatch(ctx, parcel)

	return &models.MatchResult{Parcel: parcel}, nil
}

// AssignFromTrip attaches the sender's own pending parcel to a
// published trip, claiming the trip's transporter for it. Completed
// trips are no longer assignable. A capacity mismatch does not block
// the match, it is surfaced as a warning.
func (u *MatchUC) AssignFromTrip(ctx context.Context, parcelID uuid.UUID, tripID uuid.UUID, actor models.Actor) (*models.MatchResult, error) {
	if actor.Role != models.RoleSender {
		return nil, pkgerrors.ErrUnauthorized
	}

	parcel, err := u.matchRepo.GetParcel(ctx, parcelID)
	if err != nil {
		return nil, err
	}
	if parcel.SenderID != actor.ID {
		return nil, pkgerrors.ErrUnauthorized
	}

	trip, err := u.matchRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status == models.TripStatusCompleted {
		return nil, fmt.Errorf("trip %s is %s: %w", tripID, trip.Status, pkgerrors.ErrInvalidTransition)
	}

	var warning string
	if !parcel.Size.FitsWithin(trip.Capacity) {
		warning = fmt.Sprintf("parcel size %s exceeds trip capacity %s", parcel.Size, trip.Capacity)
	}

	assigned, err := u.matchRepo.AssignTransporter(ctx, parcelID, trip.TransporterID, &tripID)
	if err != nil {
		return nil, err
	}

	u.finishMatch(ctx, assigned)

	return &models.MatchResult{Parcel: assigned, CapacityWarning: warning}, nil
}

// NearbyPending lists pending parcels around a point for transporter
// browsing. The search radius comes from configuration.
func (u *MatchUC) NearbyPending(ctx context.Context, actor models.Actor, lat, lng float64) ([]*models.NearbyParcel, error) {
	if actor.Role != models.RoleTransporter {
		return nil, pkgerrors.ErrUnauthorized
	}

	nearby, err := u.matchRepo.FindNearbyPending(ctx, lat, lng, u.cfg.Match.SearchRadiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby parcels: %w", err)
	}

	return nearby, nil
}

// TrackPendingParcel adds a freshly created parcel's origin to the geo
// pool. Parcels without geocoded origins are skipped, they remain
// reachable through the regular pending list.
func (u *MatchUC) TrackPendingParcel(ctx context.Context, event models.ParcelEvent) error {
	parcelID, err := uuid.Parse(event.ParcelID)
	if err != nil {
		return fmt.Errorf("invalid parcel id in event: %w", err)
	}

	parcel, err := u.matchRepo.GetParcel(ctx, parcelID)
	if err != nil {
		return err
	}
	if parcel.Status != models.ParcelStatusPending {
		return nil
	}
	if !parcel.Origin.Geocoded() {
		logger.Debug("Parcel origin not geocoded, skipping area pool",
			logger.String("parcel_id", event.ParcelID),
		)
		return nil
	}

	return u.matchRepo.AddPendingParcel(ctx, event.ParcelID, *parcel.Origin.Latitude, *parcel.Origin.Longitude)
}

// UntrackParcel drops a parcel from the area pool once it leaves PENDING
func (u *MatchUC) UntrackParcel(ctx context.Context, parcelID string) error {
	return u.matchRepo.RemovePendingParcel(ctx, parcelID)
}

// finishMatch clears the parcel out of the area pool and announces the
// assignment. Both are best effort: the claim itself is already
// committed.
func (u *MatchUC) finishMatch(ctx context.Context, parcel *models.Parcel) {
	if err := u.matchRepo.RemovePendingParcel(ctx, parcel.ID.String()); err != nil {
		logger.Warn("Failed to remove matched parcel from area pool",
			logger.ErrorField(err),
			logger.String("parcel_id", parcel.ID.String()),
		)
	}

	event := models.ParcelEvent{
		ParcelID:   parcel.ID.String(),
		SenderID:   parcel.SenderID.String(),
		FromStatus: models.ParcelStatusPending,
		Status:     parcel.Status,
		OccurredAt: time.Now(),
	}
	if parcel.TransporterID != nil {
		event.TransporterID = parcel.TransporterID.String()
	}
	if parcel.TripID != nil {
		event.TripID = parcel.TripID.String()
	}

	if err := u.matchGW.PublishParcelMatched(ctx, event); err != nil {
		logger.Warn("Failed to publish parcel matched event",
			logger.ErrorField(err),
			logger.String("parcel_id", parcel.ID.String()),
		)
	}

	logger.Info("Parcel matched",
		logger.String("parcel_id", parcel.ID.String()),
		logger.String("transporter_id", event.TransporterID),
	)
}
