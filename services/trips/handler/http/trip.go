package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
	"github.com/piresc/titipkan/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// ListTrips returns the browseable trip list
func (h *TripHandler) ListTrips(c echo.Context) error {
	result, err := h.tripUC.FetchTrips(c.Request().Context())
	if err != nil {
		logger.Error("Failed to fetch trips", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", result)
}

// ListMyTrips returns the authenticated transporter's own trips
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	userID, _, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.tripUC.FetchTripsByTransporter(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", result)
}

// GetTrip returns a single trip by id
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// CreateTrip publishes a new trip for the authenticated transporter
func (h *TripHandler) CreateTrip(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if role != models.RoleTransporter {
		return utils.ForbiddenResponse(c, "Only transporters can publish trips")
	}

	var draft models.TripDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), userID, &draft)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", trip)
}

// DeleteTrip removes the authenticated transporter's own trip
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), id, models.Actor{ID: userID, Role: role}); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted", nil)
}
