package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	httpHandler "github.com/piresc/titipkan/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	userHandler *httpHandler.UserHandler
	authHandler *httpHandler.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all user handlers
func NewHandler(
	userHandler *httpHandler.UserHandler,
	authHandler *httpHandler.AuthHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the users service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Protected routes
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.POST("/auth/logout", h.authHandler.Logout)

	userGroup := protected.Group("/users")
	userGroup.GET("/me", h.userHandler.GetMe)
	userGroup.PUT("/me", h.userHandler.UpdateMe)
	userGroup.POST("/role", h.userHandler.SwitchRole)
}
