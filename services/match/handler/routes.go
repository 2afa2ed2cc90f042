package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	httpHandler "github.com/piresc/titipkan/services/match/handler/http"
	natsHandler "github.com/piresc/titipkan/services/match/handler/nats"
)

// Handler coordinates the HTTP and NATS handlers for the match service
type Handler struct {
	matchHandler *httpHandler.MatchHandler
	natsHandler  *natsHandler.Handler
	cfg          *models.Config
}

// NewHandler creates and initializes the match handlers
func NewHandler(matchHandler *httpHandler.MatchHandler, natsHandler *natsHandler.Handler, cfg *models.Config) *Handler {
	return &Handler{
		matchHandler: matchHandler,
		natsHandler:  natsHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the match service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.POST("/parcels/:id/accept", h.matchHandler.Accept)
	protected.POST("/parcels/:id/assign", h.matchHandler.Assign)
	protected.GET("/match/nearby", h.matchHandler.Nearby)
}

// InitSubscribers starts the area pool event subscriptions
func (h *Handler) InitSubscribers() error {
	return h.natsHandler.InitSubscribers()
}
