package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// FetchTrips returns the browseable trip list, soonest departure first
func (u *TripUC) FetchTrips(ctx context.Context) ([]*models.Trip, error) {
	trips, err := u.tripRepo.FetchTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}
	return trips, nil
}

// FetchTripsByTransporter returns the transporter's own trips
func (u *TripUC) FetchTripsByTransporter(ctx context.Context, transporterID uuid.UUID) ([]*models.Trip, error) {
	if transporterID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}

	trips, err := u.tripRepo.FetchTripsByTransporter(ctx, transporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transporter trips: %w", err)
	}
	return trips, nil
}

// GetTrip retrieves a single trip by id
func (u *TripUC) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	trip, err := u.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// CreateTrip validates the draft and publishes a new planned trip
func (u *TripUC) CreateTrip(ctx context.Context, transporterID uuid.UUID, draft *models.TripDraft) (*models.Trip, error) {
	if transporterID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}

	if errs := draft.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("draft validation failed: %w", errs[0])
	}

	trip := &models.Trip{
		TransporterID: transporterID,
		OriginLabel:   draft.OriginLabel,
		DestLabel:     draft.DestLabel,
		DepartureDate: draft.DepartureDate,
		ArrivalDate:   draft.ArrivalDate,
		Capacity:      draft.Capacity,
		Price:         draft.Price,
	}

	created, err := u.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	if err := u.tripGW.PublishTripCreated(ctx, created); err != nil {
		logger.Warn("Failed to publish trip created event",
			logger.ErrorField(err),
			logger.String("trip_id", created.ID.String()),
		)
	}

	logger.Info("Trip created",
		logger.String("trip_id", created.ID.String()),
		logger.String("transporter_id", transporterID.String()),
	)

	return created, nil
}

// DeleteTrip removes the actor's own trip. A trip still carrying
// parcels in MATCHED, PICKED_UP or IN_TRANSIT cannot be deleted.
func (u *TripUC) DeleteTrip(ctx context.Context, tripID uuid.UUID, actor models.Actor) error {
	trip, err := u.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to get trip: %w", err)
	}

	if trip.TransporterID != actor.ID {
		return pkgerrors.ErrUnauthorized
	}

	active, err := u.tripRepo.CountActiveParcels(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to count trip parcels: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("trip has %d active parcels: %w", active, pkgerrors.ErrTripInUse)
	}

	if err := u.tripRepo.DeleteTrip(ctx, tripID, actor.ID); err != nil {
		return err
	}

	event := &models.Trip{ID: tripID, TransporterID: actor.ID}
	if err := u.tripGW.PublishTripDeleted(ctx, event); err != nil {
		logger.Warn("Failed to publish trip deleted event",
			logger.ErrorField(err),
			logger.String("trip_id", tripID.String()),
		)
	}

	logger.Info("Trip deleted",
		logger.String("trip_id", tripID.String()),
		logger.String("transporter_id", actor.ID.String()),
	)

	return nil
}
