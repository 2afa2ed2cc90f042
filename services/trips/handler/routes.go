package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	httpHandler "github.com/piresc/titipkan/services/trips/handler/http"
)

// Handler coordinates the HTTP handlers for the trips service
type Handler struct {
	tripHandler *httpHandler.TripHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the trip handlers
func NewHandler(tripHandler *httpHandler.TripHandler, cfg *models.Config) *Handler {
	return &Handler{
		tripHandler: tripHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the trips service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("", h.tripHandler.ListTrips)
	protected.POST("", h.tripHandler.CreateTrip)
	protected.GET("/mine", h.tripHandler.ListMyTrips)
	protected.GET("/:id", h.tripHandler.GetTrip)
	protected.DELETE("/:id", h.tripHandler.DeleteTrip)
}
