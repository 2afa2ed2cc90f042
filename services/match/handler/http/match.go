package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
	"github.com/piresc/titipkan/services/match"
)

// MatchHandler handles HTTP requests for parcel matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// Accept claims a pending parcel for the acting transporter
func (h *MatchHandler) Accept(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	parcelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parcel ID")
	}

	result, err := h.matchUC.DirectAccept(c.Request().Context(), parcelID, models.Actor{ID: userID, Role: role})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Parcel accepted", result)
}

// Assign attaches the sender's pending parcel to a published trip
func (h *MatchHandler) Assign(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	parcelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parcel ID")
	}

	var req models.AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TripID == uuid.Nil {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	result, err := h.matchUC.AssignFromTrip(c.Request().Context(), parcelID, req.TripID, models.Actor{ID: userID, Role: role})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Parcel assigned to trip", result)
}

// Nearby lists pending parcels around the transporter's position
func (h *MatchHandler) Nearby(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	result, err := h.matchUC.NearbyPending(c.Request().Context(), models.Actor{ID: userID, Role: role}, lat, lng)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby parcels retrieved", result)
}
