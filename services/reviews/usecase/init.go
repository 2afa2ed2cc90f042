package usecase

import (
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/reviews"
)

// ReviewUC implements the review usecase
type ReviewUC struct {
	cfg        *models.Config
	reviewRepo reviews.ReviewRepo
}

// NewReviewUC creates a new review usecase
func NewReviewUC(
	cfg *models.Config,
	reviewRepo reviews.ReviewRepo,
) *ReviewUC {
	return &ReviewUC{
		cfg:        cfg,
		reviewRepo: reviewRepo,
	}
}
