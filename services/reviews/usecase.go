package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/titipkan/services/reviews ReviewUC

// ReviewUC represents the review usecase interface
type ReviewUC interface {
	// SaveReview records a rating for the counterparty on a confirmed
	// parcel. One review per reviewer per parcel.
	SaveReview(ctx context.Context, actor models.Actor, req *models.ReviewRequest) (*models.Review, error)

	FetchReviewsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Review, error)
}
