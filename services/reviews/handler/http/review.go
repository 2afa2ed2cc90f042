package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
	"github.com/piresc/titipkan/services/reviews"
)

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	reviewUC reviews.ReviewUC
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUC reviews.ReviewUC) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// CreateReview records a rating for the counterparty on a parcel
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.reviewUC.SaveReview(c.Request().Context(), models.Actor{ID: userID, Role: role}, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review saved", review)
}

// ListUserReviews returns the reviews a user has received
func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	result, err := h.reviewUC.FetchReviewsForUser(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved", result)
}
