package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
)

const tripColumns = `
	t.id, t.transporter_id, t.origin_label, t.dest_label,
	t.departure_date, t.arrival_date, t.capacity, t.price, t.status,
	t.created_at, t.updated_at,
	u.fullname AS transporter_name,
	COALESCE(u.rating, 0) AS rating`

// CreateTrip persists a new trip row
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	trip.ID = uuid.New()
	trip.Status = models.TripStatusPlanned

	query := `
		INSERT INTO trips (
			id, transporter_id, origin_label, dest_label,
			departure_date, arrival_date, capacity, price, status,
			created_at, updated_at
		) VALUES (
			:id, :transporter_id, :origin_label, :dest_label,
			:departure_date, :arrival_date, :capacity, :price, :status,
			NOW(), NOW()
		)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, query, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetTrip(ctx, trip.ID)
}

// GetTrip retrieves a trip by id, joined with the transporter's profile
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips t
		JOIN users u ON u.id = t.transporter_id
		WHERE t.id = $1`

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// FetchTrips returns all planned trips ordered by soonest departure.
// This is the browse surface senders pick from, so completed trips are
// excluded.
func (r *TripRepo) FetchTrips(ctx context.Context) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips t
		JOIN users u ON u.id = t.transporter_id
		WHERE t.status != 'COMPLETED'
		ORDER BY t.departure_date ASC`

	var trips []*models.Trip
	if err := r.db.SelectContext(ctx, &trips, query); err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}

	return trips, nil
}

// FetchTripsByTransporter returns the transporter's own trips,
// including completed ones, ordered newest departure first.
func (r *TripRepo) FetchTripsByTransporter(ctx context.Context, transporterID uuid.UUID) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips t
		JOIN users u ON u.id = t.transporter_id
		WHERE t.transporter_id = $1
		ORDER BY t.departure_date DESC`

	var trips []*models.Trip
	if err := r.db.SelectContext(ctx, &trips, query, transporterID); err != nil {
		return nil, fmt.Errorf("failed to fetch trips by transporter: %w", err)
	}

	return trips, nil
}

// CountActiveParcels counts parcels attached to the trip that are still
// in carriage. A trip with active parcels must not be deleted.
func (r *TripRepo) CountActiveParcels(ctx context.Context, tripID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM parcels
		WHERE trip_id = $1
		  AND status IN ('MATCHED', 'PICKED_UP', 'IN_TRANSIT')`

	var count int
	if err := r.db.GetContext(ctx, &count, query, tripID); err != nil {
		return 0, fmt.Errorf("failed to count trip parcels: %w", err)
	}

	return count, nil
}

// DeleteTrip removes the trip, scoped to its owner. Zero rows affected
// means the trip either does not exist or belongs to someone else.
func (r *TripRepo) DeleteTrip(ctx context.Context, tripID uuid.UUID, transporterID uuid.UUID) error {
	query := `DELETE FROM trips WHERE id = $1 AND transporter_id = $2`

	result, err := r.db.ExecContext(ctx, query, tripID, transporterID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("trip %s: %w", tripID, pkgerrors.ErrNotFound)
	}

	return nil
}
