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

// RoleSwitcher is the slice of the session service the user handler needs
// for role switches: the cached collections must be refreshed under the
// new role before the switch reports complete.
type RoleSwitcher interface {
	SwitchRole(ctx context.Context, userID string, newRole models.Role) error
}

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	userUC   users.UserUC
	sessions RoleSwitcher
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC, sessions RoleSwitcher) *UserHandler {
	return &UserHandler{
		userUC:   userUC,
		sessions: sessions,
	}
}

// GetMe returns the authenticated user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}

// UpdateMe applies profile edits for the authenticated user
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// SwitchRole changes the active role and refreshes the session context
// under the new role's visibility rules.
func (h *UserHandler) SwitchRole(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.SwitchRole(c.Request().Context(), userID, req.Role)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.sessions.SwitchRole(c.Request().Context(), userID.String(), req.Role); err != nil {
		logger.Warn("Failed to refresh session after role switch",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role switched", resp)
}
