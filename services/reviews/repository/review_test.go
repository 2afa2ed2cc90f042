package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
)

func setupReviewRepoTest(t *testing.T) (*ReviewRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &ReviewRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateReview(t *testing.T) {
	review := func() *models.Review {
		return &models.Review{
			ParcelID:   uuid.New(),
			ReviewerID: uuid.New(),
			RevieweeID: uuid.New(),
			Rating:     5,
			Comment:    "Barang sampai dengan aman",
		}
	}

	t.Run("Success Refreshes Aggregate Rating", func(t *testing.T) {
		repo, mock, cleanup := setupReviewRepoTest(t)
		defer cleanup()

		rv := review()
		mock.ExpectBegin()
		mock.ExpectExec("^INSERT INTO reviews").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^UPDATE users SET rating").
			WithArgs(rv.RevieweeID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.CreateReview(context.Background(), rv)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Review", func(t *testing.T) {
		repo, mock, cleanup := setupReviewRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^INSERT INTO reviews").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		created, err := repo.CreateReview(context.Background(), review())

		assert.ErrorIs(t, err, pkgerrors.ErrReviewExists)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchReviewsForUser(t *testing.T) {
	repo, mock, cleanup := setupReviewRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "parcel_id", "reviewer_id", "reviewee_id", "rating", "comment", "created_at",
	}).AddRow(uuid.New(), uuid.New(), uuid.New(), userID, 4, "Pengiriman cepat", time.Now())

	mock.ExpectQuery("^SELECT (.+) FROM reviews WHERE reviewee_id").
		WithArgs(userID).
		WillReturnRows(rows)

	reviews, err := repo.FetchReviewsForUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, userID, reviews[0].RevieweeID)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}
