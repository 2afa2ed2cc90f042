package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// CreateReview inserts the review and refreshes the reviewee's
// aggregate rating in the same transaction. The unique constraint on
// (parcel_id, reviewer_id) makes reviews append-once.
func (r *ReviewRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.ID = uuid.New()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO reviews (id, parcel_id, reviewer_id, reviewee_id, rating, comment, created_at)
		VALUES (:id, :parcel_id, :reviewer_id, :reviewee_id, :rating, :comment, NOW())`

	if _, err := tx.NamedExecContext(ctx, insert, review); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("parcel %s already reviewed: %w", review.ParcelID, pkgerrors.ErrReviewExists)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	aggregate := `
		UPDATE users
		SET rating = (SELECT AVG(rating) FROM reviews WHERE reviewee_id = $1),
		    updated_at = NOW()
		WHERE id = $1`

	if _, err := tx.ExecContext(ctx, aggregate, review.RevieweeID); err != nil {
		return nil, fmt.Errorf("failed to update reviewee rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return review, nil
}

// GetParcel loads the fields needed to authorize a review
func (r *ReviewRepo) GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error) {
	query := `SELECT id, sender_id, transporter_id, status FROM parcels WHERE id = $1`

	var parcel models.Parcel
	if err := r.db.GetContext(ctx, &parcel, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("parcel %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	return &parcel, nil
}

// FetchReviewsForUser returns reviews received by a user, newest first
func (r *ReviewRepo) FetchReviewsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Review, error) {
	query := `
		SELECT id, parcel_id, reviewer_id, reviewee_id, rating, comment, created_at
		FROM reviews
		WHERE reviewee_id = $1
		ORDER BY created_at DESC`

	var reviews []*models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}
