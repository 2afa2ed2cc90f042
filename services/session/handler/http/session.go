package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/utils"
	"github.com/piresc/titipkan/services/session"
)

// SessionHandler handles HTTP requests for the session context
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// GetSession returns the caller's current session snapshot
func (h *SessionHandler) GetSession(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	snapshot, err := h.sessionUC.Snapshot(c.Request().Context(), userID.String())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", snapshot)
}

// RefreshSession forces a reload of the caller's cached collections
func (h *SessionHandler) RefreshSession(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.sessionUC.Refresh(c.Request().Context(), userID.String()); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	snapshot, err := h.sessionUC.Snapshot(c.Request().Context(), userID.String())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session refreshed", snapshot)
}
