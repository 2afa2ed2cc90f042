package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/titipkan/internal/pkg/constants"
	"github.com/piresc/titipkan/internal/pkg/database"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
)

func setupMatchRepoTest(t *testing.T) (*MatchRepo, sqlmock.Sqlmock, *miniredis.Miniredis, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := database.NewRedisClientFromExisting(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	repo := &MatchRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: redisClient,
	}

	cleanup := func() {
		sqlxDB.Close()
		mr.Close()
	}

	return repo, mock, mr, cleanup
}

var parcelTestColumns = []string{
	"id", "sender_id", "transporter_id", "trip_id", "title", "description",
	"parcel_content", "weight_kg", "size", "price",
	"origin_lat", "origin_lng", "origin_label",
	"dest_lat", "dest_lng", "dest_label",
	"status", "tracking_code", "delivery_date", "instructions",
	"receiver_name", "receiver_phone", "image_urls", "created_at", "updated_at",
}

func matchedParcelRow(id, senderID, transporterID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(parcelTestColumns).AddRow(
		id, senderID, transporterID, nil, "Oleh-oleh", "Kardus kecil",
		"Bakpia", 1.2, models.SizeMedium, 40000.0,
		-6.2, 106.8, "Jakarta Selatan",
		-7.8, 110.4, "Yogyakarta",
		models.ParcelStatusMatched, "TK-AB23CD45", nil, "",
		"Siti Rahayu", "+628987654321", nil, now, now,
	)
}

func pendingParcelRow(id, senderID uuid.UUID, lat, lng float64) *sqlmock.Rows {
	rows := sqlmock.NewRows(parcelTestColumns)
	return addPendingParcelRow(rows, id, senderID, lat, lng)
}

func addPendingParcelRow(rows *sqlmock.Rows, id, senderID uuid.UUID, lat, lng float64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, senderID, nil, nil, "Dokumen penting", "Amplop coklat",
		"Ijazah", 0.5, models.SizeSmall, 25000.0,
		lat, lng, "Jakarta Selatan",
		-7.8, 110.4, "Yogyakarta",
		models.ParcelStatusPending, "TK-EF56GH78", nil, "",
		"Siti Rahayu", "+628987654321", nil, now, now,
	)
}

func TestAssignTransporter(t *testing.T) {
	parcelID := uuid.New()
	senderID := uuid.New()
	transporterID := uuid.New()

	t.Run("Claims Pending Parcel", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE parcels SET transporter_id").
			WithArgs(parcelID, transporterID, nil).
			WillReturnRows(matchedParcelRow(parcelID, senderID, transporterID))

		parcel, err := repo.AssignTransporter(context.Background(), parcelID, transporterID, nil)

		require.NoError(t, err)
		require.NotNil(t, parcel.TransporterID)
		assert.Equal(t, transporterID, *parcel.TransporterID)
		assert.Equal(t, models.ParcelStatusMatched, parcel.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lost Race", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE parcels SET transporter_id").
			WithArgs(parcelID, transporterID, nil).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("^SELECT EXISTS").
			WithArgs(parcelID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		parcel, err := repo.AssignTransporter(context.Background(), parcelID, transporterID, nil)

		assert.ErrorIs(t, err, pkgerrors.ErrAlreadyAssigned)
		assert.Nil(t, parcel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Parcel Missing", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE parcels SET transporter_id").
			WithArgs(parcelID, transporterID, nil).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("^SELECT EXISTS").
			WithArgs(parcelID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		parcel, err := repo.AssignTransporter(context.Background(), parcelID, transporterID, nil)

		assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
		assert.Nil(t, parcel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPendingParcelAreaPool(t *testing.T) {
	t.Run("Nearby Hit Hydrated From Database", func(t *testing.T) {
		repo, mock, mr, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		parcelID := uuid.New()
		senderID := uuid.New()

		// Origin in Jakarta, search from a point a few hundred meters away.
		require.NoError(t, repo.AddPendingParcel(context.Background(), parcelID.String(), -6.2000, 106.8000))

		cell := utils.EncodeGeoPoint(utils.GeoPoint{Latitude: -6.2000, Longitude: 106.8000}, areaPrecision)
		assert.True(t, mr.Exists(fmt.Sprintf(constants.KeyPendingParcelArea, cell)))
		assert.True(t, mr.Exists(constants.KeyPendingParcelCells))

		mock.ExpectQuery("^SELECT (.+) FROM parcels WHERE id = ANY").
			WithArgs(pq.Array([]string{parcelID.String()})).
			WillReturnRows(pendingParcelRow(parcelID, senderID, -6.2000, 106.8000))

		nearby, err := repo.FindNearbyPending(context.Background(), -6.2010, 106.8010, 5)

		require.NoError(t, err)
		require.Len(t, nearby, 1)
		assert.Equal(t, parcelID, nearby[0].Parcel.ID)
		assert.Less(t, nearby[0].DistanceKm, 1.0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Neighbor Cell Candidate Ranked By Distance", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		farID := uuid.New()
		nearID := uuid.New()
		senderID := uuid.New()

		// The search point sits just west of a cell border: the far parcel
		// shares its cell, the near parcel is across the border in the
		// neighboring cell.
		require.NoError(t, repo.AddPendingParcel(context.Background(), farID.String(), -6.2000, 106.8000))
		require.NoError(t, repo.AddPendingParcel(context.Background(), nearID.String(), -6.2000, 106.8800))

		rows := sqlmock.NewRows(parcelTestColumns)
		addPendingParcelRow(rows, farID, senderID, -6.2000, 106.8000)
		addPendingParcelRow(rows, nearID, senderID, -6.2000, 106.8800)
		mock.ExpectQuery("^SELECT (.+) FROM parcels WHERE id = ANY").
			WithArgs(pq.Array([]string{farID.String(), nearID.String()})).
			WillReturnRows(rows)

		nearby, err := repo.FindNearbyPending(context.Background(), -6.2000, 106.8700, 10)

		require.NoError(t, err)
		require.Len(t, nearby, 2)
		assert.Equal(t, nearID, nearby[0].Parcel.ID)
		assert.Equal(t, farID, nearby[1].Parcel.ID)
		assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Candidate Beyond Radius Filtered Out", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		parcelID := uuid.New()
		senderID := uuid.New()

		// Same cell but roughly 8km away from the search point.
		require.NoError(t, repo.AddPendingParcel(context.Background(), parcelID.String(), -6.2700, 106.8000))

		mock.ExpectQuery("^SELECT (.+) FROM parcels WHERE id = ANY").
			WithArgs(pq.Array([]string{parcelID.String()})).
			WillReturnRows(pendingParcelRow(parcelID, senderID, -6.2700, 106.8000))

		nearby, err := repo.FindNearbyPending(context.Background(), -6.2000, 106.8000, 5)

		require.NoError(t, err)
		assert.Empty(t, nearby)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stale Pool Entry Filtered Out", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		parcelID := uuid.New()
		require.NoError(t, repo.AddPendingParcel(context.Background(), parcelID.String(), -6.2000, 106.8000))

		// The parcel left PENDING since the pool entry was written.
		mock.ExpectQuery("^SELECT (.+) FROM parcels WHERE id = ANY").
			WithArgs(pq.Array([]string{parcelID.String()})).
			WillReturnRows(sqlmock.NewRows(parcelTestColumns))

		nearby, err := repo.FindNearbyPending(context.Background(), -6.2010, 106.8010, 5)

		require.NoError(t, err)
		assert.Empty(t, nearby)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Pool Skips Database", func(t *testing.T) {
		repo, mock, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		nearby, err := repo.FindNearbyPending(context.Background(), -6.2, 106.8, 5)

		require.NoError(t, err)
		assert.Nil(t, nearby)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Removed Parcel Disappears", func(t *testing.T) {
		repo, mock, mr, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		parcelID := uuid.New()
		require.NoError(t, repo.AddPendingParcel(context.Background(), parcelID.String(), -6.2000, 106.8000))
		require.NoError(t, repo.RemovePendingParcel(context.Background(), parcelID.String()))

		assert.False(t, mr.Exists(constants.KeyPendingParcelCells))

		nearby, err := repo.FindNearbyPending(context.Background(), -6.2010, 106.8010, 5)

		require.NoError(t, err)
		assert.Nil(t, nearby)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Never Indexed Parcel Removal Is Noop", func(t *testing.T) {
		repo, _, _, cleanup := setupMatchRepoTest(t)
		defer cleanup()

		require.NoError(t, repo.RemovePendingParcel(context.Background(), uuid.NewString()))
	})
}
