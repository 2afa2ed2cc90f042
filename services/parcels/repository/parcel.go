package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/titipkan/internal/pkg/constants"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
)

const parcelColumns = `
	id, sender_id, transporter_id, trip_id, title, description,
	parcel_content, weight_kg, size, price,
	origin_lat, origin_lng, origin_label,
	dest_lat, dest_lng, dest_label,
	status, tracking_code, delivery_date, instructions,
	receiver_name, receiver_phone, image_urls, created_at, updated_at`

// FetchParcels returns parcels visible under the role's scoping rule,
// ordered newest first.
func (r *ParcelRepo) FetchParcels(ctx context.Context, role models.Role, userID uuid.UUID) ([]*models.Parcel, error) {
	var query string
	switch role {
	case models.RoleSender:
		query = `SELECT ` + parcelColumns + `
			FROM parcels
			WHERE sender_id = $1
			ORDER BY created_at DESC`
	case models.RoleTransporter:
		query = `SELECT ` + parcelColumns + `
			FROM parcels
			WHERE status = 'PENDING' OR transporter_id = $1
			ORDER BY created_at DESC`
	default:
		// Receivers and guests have no bulk collection; they locate
		// parcels through the tracking-code lookup.
		return nil, nil
	}

	var dtos []models.ParcelDTO
	if err := r.db.SelectContext(ctx, &dtos, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch parcels: %w", err)
	}

	parcels := make([]*models.Parcel, 0, len(dtos))
	for i := range dtos {
		parcels = append(parcels, dtos[i].ToParcel())
	}

	return parcels, nil
}

// GetParcel retrieves a parcel by id
func (r *ParcelRepo) GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`

	var dto models.ParcelDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("parcel %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	return dto.ToParcel(), nil
}

// GetParcelByTrackingCode retrieves a parcel by its public tracking code.
// Lookups go through a short-lived Redis cache since this is the one
// unauthenticated read path.
func (r *ParcelRepo) GetParcelByTrackingCode(ctx context.Context, code string) (*models.Parcel, error) {
	cacheKey := fmt.Sprintf(constants.KeyTrackingCache, code)

	if cached, err := r.redisClient.Get(ctx, cacheKey); err == nil && cached != "" {
		var parcel models.Parcel
		if err := json.Unmarshal([]byte(cached), &parcel); err == nil {
			return &parcel, nil
		}
	}

	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE tracking_code = $1`

	var dto models.ParcelDTO
	if err := r.db.GetContext(ctx, &dto, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tracking code %s: %w", code, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get parcel by tracking code: %w", err)
	}

	parcel := dto.ToParcel()

	if payload, err := json.Marshal(parcel); err == nil {
		ttl := time.Duration(r.cfg.Match.TrackingCacheTTL) * time.Second
		if err := r.redisClient.Set(ctx, cacheKey, payload, ttl); err != nil {
			logger.Debug("Failed to cache tracking lookup", logger.ErrorField(err))
		}
	}

	return parcel, nil
}

// CreateParcel inserts a new parcel, assigning the identifier and a unique
// tracking code server-side. Tracking-code collisions are retried.
func (r *ParcelRepo) CreateParcel(ctx context.Context, parcel *models.Parcel) (*models.Parcel, error) {
	parcel.ID = uuid.New()
	now := time.Now()
	parcel.CreatedAt = now
	parcel.UpdatedAt = now
	if parcel.Status == "" {
		parcel.Status = models.ParcelStatusPending
	}

	const maxCodeAttempts = 3

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := utils.GenerateTrackingCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tracking code: %w", err)
		}
		parcel.TrackingCode = code

		err = r.insertParcel(ctx, parcel)
		if err == nil {
			return parcel, nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "parcels_tracking_code_key" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to allocate a unique tracking code after %d attempts", maxCodeAttempts)
}

func (r *ParcelRepo) insertParcel(ctx context.Context, parcel *models.Parcel) error {
	dto := parcel.ToDTO()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO parcels (
			id, sender_id, transporter_id, trip_id, title, description,
			parcel_content, weight_kg, size, price,
			origin_lat, origin_lng, origin_label,
			dest_lat, dest_lng, dest_label,
			status, tracking_code, delivery_date, instructions,
			receiver_name, receiver_phone, image_urls, created_at, updated_at
		) VALUES (
			:id, :sender_id, :transporter_id, :trip_id, :title, :description,
			:parcel_content, :weight_kg, :size, :price,
			:origin_lat, :origin_lng, :origin_label,
			:dest_lat, :dest_lng, :dest_label,
			:status, :tracking_code, :delivery_date, :instructions,
			:receiver_name, :receiver_phone, :image_urls, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert parcel: %w", err)
	}

	return tx.Commit()
}

// UpdateParcelStatus transitions a parcel's status. The write is
// conditional on the expected current status so a concurrent transition
// (or a double submit) affects zero rows and fails as ErrInvalidTransition.
func (r *ParcelRepo) UpdateParcelStatus(ctx context.Context, id uuid.UUID, from, to models.ParcelStatus) error {
	query := `
		UPDATE parcels
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING tracking_code
	`

	var trackingCode string
	err := r.db.QueryRowContext(ctx, query, id, from, to, time.Now()).Scan(&trackingCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("parcel %s is no longer %s: %w", id, from, pkgerrors.ErrInvalidTransition)
		}
		return fmt.Errorf("failed to update parcel status: %w", err)
	}

	// Drop the cached tracking entry so public lookups see the new status.
	cacheKey := fmt.Sprintf(constants.KeyTrackingCache, trackingCode)
	if err := r.redisClient.Delete(ctx, cacheKey); err != nil {
		logger.Debug("Failed to invalidate tracking cache", logger.ErrorField(err))
	}

	return nil
}
