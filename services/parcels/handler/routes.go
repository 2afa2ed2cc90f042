package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	httpHandler "github.com/piresc/titipkan/services/parcels/handler/http"
)

// Handler coordinates the HTTP handlers for the parcels service
type Handler struct {
	parcelHandler *httpHandler.ParcelHandler
	cfg           *models.Config
}

// NewHandler creates and initializes the parcel handlers
func NewHandler(parcelHandler *httpHandler.ParcelHandler, cfg *models.Config) *Handler {
	return &Handler{
		parcelHandler: parcelHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the parcels service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public tracking lookup, usable without a session
	e.GET("/tracking/:code", h.parcelHandler.Track)

	protected := e.Group("/parcels", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("", h.parcelHandler.ListParcels)
	protected.POST("", h.parcelHandler.CreateParcel)
	protected.GET("/:id", h.parcelHandler.GetParcel)
	protected.POST("/:id/advance", h.parcelHandler.Advance)
	protected.POST("/:id/confirm", h.parcelHandler.Confirm)
}
