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

// FetchParcels returns the parcels visible to the given role, newest first.
// SENDER sees parcels they created, TRANSPORTER sees the pending pool plus
// parcels assigned to them, everyone else sees none.
func (u *ParcelUC) FetchParcels(ctx context.Context, role models.Role, userID uuid.UUID) ([]*models.Parcel, error) {
	if role == models.RoleGuest || userID == uuid.Nil {
		return nil, nil
	}

	parcels, err := u.parcelRepo.FetchParcels(ctx, role, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parcels: %w", err)
	}

	return parcels, nil
}

// GetParcel retrieves a single parcel by id
func (u *ParcelUC) GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error) {
	parcel, err := u.parcelRepo.GetParcel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}
	return parcel, nil
}

// CreateParcel validates the draft and commits it as a PENDING parcel.
// Validation failures are reported before any repository call is made.
func (u *ParcelUC) CreateParcel(ctx context.Context, senderID uuid.UUID, draft *models.ParcelDraft) (*models.Parcel, error) {
	if senderID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}

	if errs := draft.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("draft validation failed: %w", errs[0])
	}

	parcel := draft.ToParcel()
	parcel.SenderID = senderID

	created, err := u.parcelRepo.CreateParcel(ctx, parcel)
	if err != nil {
		return nil, fmt.Errorf("failed to create parcel: %w", err)
	}

	event := models.ParcelEvent{
		ParcelID:   created.ID.String(),
		SenderID:   created.SenderID.String(),
		Status:     created.Status,
		OccurredAt: time.Now(),
	}
	if err := u.parcelGW.PublishParcelCreated(ctx, event); err != nil {
		// The parcel is committed; the pool pick-up happens on the next
		// refresh cycle instead.
		logger.Warn("Failed to publish parcel created event",
			logger.ErrorField(err),
			logger.String("parcel_id", created.ID.String()),
		)
	}

	logger.Info("Parcel created",
		logger.String("parcel_id", created.ID.String()),
		logger.String("tracking_code", created.TrackingCode),
	)

	return created, nil
}

// TrackByCode is the public tracking lookup. The match is exact and
// case-sensitive; an unknown code yields (nil, nil), not an error.
func (u *ParcelUC) TrackByCode(ctx context.Context, code string) (*models.Parcel, error) {
	if code == "" {
		return nil, nil
	}

	parcel, err := u.parcelRepo.GetParcelByTrackingCode(ctx, code)
	if err != nil {
		if pkgerrors.Is(err, pkgerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up tracking code: %w", err)
	}

	return parcel, nil
}

// Advance applies the unique forward transition for the parcel's current
// status. Nothing is mutated on any failure path: the conditional write
// either commits the transition or reports the conflict.
func (u *ParcelUC) Advance(ctx context.Context, parcelID uuid.UUID, actor models.Actor) (*models.Parcel, error) {
	parcel, err := u.parcelRepo.GetParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parcel: %w", err)
	}

	next, ok := NextStatus(parcel.Status)
	if !ok {
		return nil, fmt.Errorf("no forward transition from %s: %w", parcel.Status, pkgerrors.ErrInvalidTransition)
	}

	if err := authorizeTransition(parcel, actor, next); err != nil {
		return nil, err
	}

	if err := u.parcelRepo.UpdateParcelStatus(ctx, parcelID, parcel.Status, next); err != nil {
		return nil, err
	}

	from := parcel.Status
	parcel.Status = next

	event := models.ParcelEvent{
		ParcelID:   parcel.ID.String(),
		SenderID:   parcel.SenderID.String(),
		FromStatus: from,
		Status:     next,
		OccurredAt: time.Now(),
	}
	if parcel.TransporterID != nil {
		event.TransporterID = parcel.TransporterID.String()
	}

	publish := u.parcelGW.PublishStatusChanged
	if next == models.ParcelStatusConfirmed {
		publish = u.parcelGW.PublishParcelConfirmed
	}
	if err := publish(ctx, event); err != nil {
		logger.Warn("Failed to publish status change event",
			logger.ErrorField(err),
			logger.String("parcel_id", parcel.ID.String()),
			logger.String("status", string(next)),
		)
	}

	logger.Info("Parcel status advanced",
		logger.String("parcel_id", parcel.ID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(next)),
	)

	return parcel, nil
}

// Confirm is the specialized advance from DELIVERED to CONFIRMED. Review
// submission is a decoupled follow-up the caller may trigger afterwards.
func (u *ParcelUC) Confirm(ctx context.Context, parcelID uuid.UUID, actor models.Actor) (*models.Parcel, error) {
	parcel, err := u.parcelRepo.GetParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parcel: %w", err)
	}

	if parcel.Status != models.ParcelStatusDelivered {
		return nil, fmt.Errorf("confirm requires status DELIVERED, got %s: %w", parcel.Status, pkgerrors.ErrInvalidTransition)
	}

	return u.Advance(ctx, parcelID, actor)
}
