package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/titipkan/services/reviews ReviewRepo

// ReviewRepo represents the review repository interface
type ReviewRepo interface {
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	GetParcel(ctx context.Context, id uuid.UUID) (*models.Parcel, error)
	FetchReviewsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Review, error)
}
