package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	httpHandler "github.com/piresc/titipkan/services/session/handler/http"
	natsHandler "github.com/piresc/titipkan/services/session/handler/nats"
)

// Handler coordinates the HTTP and NATS handlers for the session service
type Handler struct {
	sessionHandler *httpHandler.SessionHandler
	natsHandler    *natsHandler.Handler
	cfg            *models.Config
}

// NewHandler creates and initializes the session handlers
func NewHandler(sessionHandler *httpHandler.SessionHandler, natsHandler *natsHandler.Handler, cfg *models.Config) *Handler {
	return &Handler{
		sessionHandler: sessionHandler,
		natsHandler:    natsHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the session service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/session", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("", h.sessionHandler.GetSession)
	protected.POST("/refresh", h.sessionHandler.RefreshSession)
}

// InitSubscribers starts the session invalidation subscriptions
func (h *Handler) InitSubscribers() error {
	return h.natsHandler.InitSubscribers()
}
