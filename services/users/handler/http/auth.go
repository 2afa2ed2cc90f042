package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
	"github.com/piresc/titipkan/services/users"
)

// SessionManager is the slice of the session service the auth handler
// needs: contexts are attached on login, refreshed on role switch and
// torn down on logout.
type SessionManager interface {
	Attach(ctx context.Context, user *models.User) error
	Teardown(userID string)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	userUC   users.UserUC
	sessions SessionManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC, sessions SessionManager) *AuthHandler {
	return &AuthHandler{
		userUC:   userUC,
		sessions: sessions,
	}
}

// Register handles user registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.sessions.Attach(c.Request().Context(), resp.User); err != nil {
		logger.Warn("Failed to attach session context", logger.ErrorField(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", resp)
}

// Login handles login requests. The requested role becomes the active
// role even when it differs from the stored profile.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.sessions.Attach(c.Request().Context(), resp.User); err != nil {
		logger.Warn("Failed to attach session context", logger.ErrorField(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout tears down the caller's session context
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	h.sessions.Teardown(userID.String())

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
