package repository

import (
	"context"
	"database/sql"
	"errors"
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

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "fullname", "phone", "role", "avatar_url",
		"rating", "password_hash", "is_active", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Email, user.FullName, user.Phone, user.Role, user.AvatarURL,
		user.Rating, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pq.Error{Code: "23505"})
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, pkgerrors.ErrEmailTaken)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(errors.New("connection refused"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, pkgerrors.ErrEmailTaken)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user := &models.User{
				Email:        "budi@example.com",
				FullName:     "Budi Santoso",
				Phone:        "+628123456789",
				Role:         models.RoleSender,
				PasswordHash: "$2a$10$hash",
				IsActive:     true,
			}

			err := repo.CreateUser(context.Background(), user)

			tc.assertFunc(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	testCases := []struct {
		name       string
		email      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:  "Success",
			email: "budi@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				stored := &models.User{
					ID:        userID,
					Email:     "budi@example.com",
					FullName:  "Budi Santoso",
					Phone:     "+628123456789",
					Role:      models.RoleSender,
					Rating:    4.8,
					IsActive:  true,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
					WithArgs("budi@example.com").
					WillReturnRows(userRows(stored))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, userID, user.ID)
				assert.Equal(t, "budi@example.com", user.Email)
				assert.Equal(t, models.RoleSender, user.Role)
				assert.Equal(t, 4.8, user.Rating)
				assert.True(t, user.IsActive)
			},
		},
		{
			name:  "User Not Found",
			email: "nobody@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
					WithArgs("nobody@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
				assert.Nil(t, user)
			},
		},
		{
			name:  "Database Error",
			email: "budi@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
					WithArgs("budi@example.com").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.Nil(t, user)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByEmail(context.Background(), tc.email)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateRole(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users").
			WithArgs(userID, models.RoleTransporter, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRole(context.Background(), userID, models.RoleTransporter)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users").
			WithArgs(userID, models.RoleTransporter, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRole(context.Background(), userID, models.RoleTransporter)

		assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
