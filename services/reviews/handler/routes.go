package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	httpHandler "github.com/piresc/titipkan/services/reviews/handler/http"
)

// Handler coordinates the HTTP handlers for the reviews service
type Handler struct {
	reviewHandler *httpHandler.ReviewHandler
	cfg           *models.Config
}

// NewHandler creates and initializes the review handlers
func NewHandler(reviewHandler *httpHandler.ReviewHandler, cfg *models.Config) *Handler {
	return &Handler{
		reviewHandler: reviewHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the reviews service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.POST("/reviews", h.reviewHandler.CreateReview)
	protected.GET("/users/:id/reviews", h.reviewHandler.ListUserReviews)
}
