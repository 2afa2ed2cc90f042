package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// SaveReview records a rating for the counterparty on a confirmed
// parcel. The reviewer must be the parcel's sender or its transporter,
// and the reviewee is always the other party.
func (u *ReviewUC) SaveReview(ctx context.Context, actor models.Actor, req *models.ReviewRequest) (*models.Review, error) {
	if actor.ID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	parcel, err := u.reviewRepo.GetParcel(ctx, req.ParcelID)
	if err != nil {
		return nil, err
	}

	if parcel.Status != models.ParcelStatusConfirmed {
		return nil, fmt.Errorf("parcel is %s: %w", parcel.Status, pkgerrors.ErrInvalidTransition)
	}
	if parcel.TransporterID == nil {
		return nil, fmt.Errorf("parcel has no transporter: %w", pkgerrors.ErrUnauthorized)
	}

	var revieweeID uuid.UUID
	switch actor.ID {
	case parcel.SenderID:
		revieweeID = *parcel.TransporterID
	case *parcel.TransporterID:
		revieweeID = parcel.SenderID
	default:
		return nil, pkgerrors.ErrUnauthorized
	}

	review := &models.Review{
		ParcelID:   req.ParcelID,
		ReviewerID: actor.ID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	created, err := u.reviewRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	logger.Info("Review saved",
		logger.String("parcel_id", req.ParcelID.String()),
		logger.String("reviewer_id", actor.ID.String()),
		logger.Int("rating", req.Rating),
	)

	return created, nil
}

// FetchReviewsForUser returns the reviews a user has received
func (u *ReviewUC) FetchReviewsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Review, error) {
	reviews, err := u.reviewRepo.FetchReviewsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}
