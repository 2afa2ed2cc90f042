package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/titipkan/internal/pkg/constants"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
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

// AssignTransporter claims a pending parcel for a transporter. The
// update is conditional on the parcel still being unclaimed, so when
// two claims race, exactly one row update succeeds and the loser sees
// ErrAlreadyAssigned.
func (r *MatchRepo) AssignTransporter(ctx context.Context, parcelID, transporterID uuid.UUID, tripID *uuid.UUID) (*models.Parcel, error) {
	query := `
		UPDATE parcels
		SET transporter_id = $2,
		    trip_id = $3,
		    status = 'MATCHED',
		    updated_at = NOW()
		WHERE id = $1
		  AND transporter_id IS NULL
		  AND status = 'PENDING'
		RETURNING ` + parcelColumns

	var dto models.ParcelDTO
	err := r.db.GetContext(ctx, &dto, query, parcelID, transporterID, tripID)
	if err == nil {
		return dto.ToParcel(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to assign transporter: %w", err)
	}

	// Zero rows: distinguish a missing parcel from a lost race.
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM parcels WHERE id = $1)`, parcelID); err != nil {
		return nil, fmt.Errorf("failed to check parcel existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("parcel %s: %w", parcelID, pkgerrors.ErrNotFound)
	}

	return nil, fmt.Errorf("parcel %s: %w", parcelID, pkgerrors.ErrAlreadyAssigned)
}

// GetParcel retrieves a parcel by id
func (r *MatchRepo) GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error) {
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

// GetTrip retrieves a trip by id
func (r *MatchRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, transporter_id, origin_label, dest_label,
		       departure_date, arrival_date, capacity, price, status,
		       created_at, updated_at
		FROM trips
		WHERE id = $1`

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// areaPrecision is the geohash length used to shard the pending pool.
// Precision 4 cells are roughly 39x20km, so a cell together with its
// eight neighbors always covers the default search radius.
const areaPrecision = 4

// AddPendingParcel indexes a parcel origin in the pending pool. The
// pool is sharded by geohash cell, with a reverse mapping kept so the
// parcel can be dropped without knowing its coordinates.
func (r *MatchRepo) AddPendingParcel(ctx context.Context, parcelID string, lat, lng float64) error {
	cell := utils.EncodeGeoPoint(utils.GeoPoint{Latitude: lat, Longitude: lng}, areaPrecision)

	if err := r.redisClient.SAdd(ctx, fmt.Sprintf(constants.KeyPendingParcelArea, cell), parcelID); err != nil {
		return fmt.Errorf("failed to add parcel to area pool: %w", err)
	}
	if err := r.redisClient.HSet(ctx, constants.KeyPendingParcelCells, parcelID, cell); err != nil {
		return fmt.Errorf("failed to record parcel pool cell: %w", err)
	}
	return nil
}

// RemovePendingParcel drops a parcel from the pending pool. A parcel
// that was never indexed (ungeocoded origin) is not an error.
func (r *MatchRepo) RemovePendingParcel(ctx context.Context, parcelID string) error {
	cell, err := r.redisClient.HGet(ctx, constants.KeyPendingParcelCells, parcelID)
	if err != nil {
		return nil
	}

	if err := r.redisClient.SRem(ctx, fmt.Sprintf(constants.KeyPendingParcelArea, cell), parcelID); err != nil {
		return fmt.Errorf("failed to remove parcel from area pool: %w", err)
	}
	if err := r.redisClient.HDel(ctx, constants.KeyPendingParcelCells, parcelID); err != nil {
		return fmt.Errorf("failed to clear parcel pool cell: %w", err)
	}
	return nil
}

// FindNearbyPending collects pool candidates from the query point's
// geohash cell and its neighbors, hydrates them from the database, and
// ranks them by haversine distance from the canonical origin
// coordinates. Parcels that left PENDING since the pool entry was
// written are filtered out here rather than trusted from Redis.
func (r *MatchRepo) FindNearbyPending(ctx context.Context, lat, lng, radiusKm float64) ([]*models.NearbyParcel, error) {
	origin := utils.GeoPoint{Latitude: lat, Longitude: lng}
	cell := utils.EncodeGeoPoint(origin, areaPrecision)

	var ids []string
	for _, c := range append([]string{cell}, utils.GetNeighbors(cell)...) {
		members, err := r.redisClient.SMembers(ctx, fmt.Sprintf(constants.KeyPendingParcelArea, c))
		if err != nil {
			return nil, fmt.Errorf("failed to query area pool: %w", err)
		}
		ids = append(ids, members...)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = ANY($1)
		  AND status = 'PENDING'`

	var dtos []models.ParcelDTO
	if err := r.db.SelectContext(ctx, &dtos, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to hydrate nearby parcels: %w", err)
	}

	nearby := make([]*models.NearbyParcel, 0, len(dtos))
	for i := range dtos {
		p := dtos[i].ToParcel()
		if !p.Origin.Geocoded() {
			continue
		}
		dist := utils.CalculateDistance(origin, utils.GeoPoint{
			Latitude:  *p.Origin.Latitude,
			Longitude: *p.Origin.Longitude,
		})
		if dist > radiusKm {
			continue
		}
		nearby = append(nearby, &models.NearbyParcel{
			Parcel:     p,
			DistanceKm: dist,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}
