package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
)

func setupTripRepoTest(t *testing.T) (*TripRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TripRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

var tripTestColumns = []string{
	"id", "transporter_id", "origin_label", "dest_label",
	"departure_date", "arrival_date", "capacity", "price", "status",
	"created_at", "updated_at", "transporter_name", "rating",
}

func tripRow(id, transporterID uuid.UUID, status models.TripStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(tripTestColumns).AddRow(
		id, transporterID, "Jakarta", "Yogyakarta",
		now.Add(24*time.Hour), nil, models.SizeLarge, 50000.0, status,
		now, now, "Andi Wijaya", 4.7,
	)
}

func TestGetTrip(t *testing.T) {
	tripID := uuid.New()
	transporterID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM trips t JOIN users u").
			WithArgs(tripID).
			WillReturnRows(tripRow(tripID, transporterID, models.TripStatusPlanned))

		trip, err := repo.GetTrip(context.Background(), tripID)

		require.NoError(t, err)
		assert.Equal(t, tripID, trip.ID)
		assert.Equal(t, "Andi Wijaya", trip.TransporterName)
		assert.Equal(t, 4.7, trip.Rating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM trips t JOIN users u").
			WithArgs(tripID).
			WillReturnRows(sqlmock.NewRows(tripTestColumns))

		trip, err := repo.GetTrip(context.Background(), tripID)

		assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
		assert.Nil(t, trip)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchTrips(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	rows := tripRow(uuid.New(), uuid.New(), models.TripStatusPlanned)
	mock.ExpectQuery("^SELECT (.+) FROM trips t JOIN users u (.+) WHERE t.status != 'COMPLETED'").
		WillReturnRows(rows)

	trips, err := repo.FetchTrips(context.Background())

	require.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveParcels(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectQuery("^SELECT COUNT").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveParcels(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTrip(t *testing.T) {
	tripID := uuid.New()
	transporterID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^DELETE FROM trips").
			WithArgs(tripID, transporterID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteTrip(context.Background(), tripID, transporterID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Owned Or Missing", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^DELETE FROM trips").
			WithArgs(tripID, transporterID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteTrip(context.Background(), tripID, transporterID)

		assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
