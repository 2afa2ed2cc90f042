package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
	"github.com/piresc/titipkan/services/parcels"
)

// ParcelCreator is the slice of the session service the parcel handler
// uses for creation, so the optimistic prepend and the reconciling
// refresh both happen.
type ParcelCreator interface {
	AddParcel(ctx context.Context, actor models.Actor, draft *models.ParcelDraft) (*models.Parcel, error)
}

// ParcelHandler handles HTTP requests for parcel operations
type ParcelHandler struct {
	parcelUC parcels.ParcelUC
	sessions ParcelCreator
}

// NewParcelHandler creates a new parcel handler
func NewParcelHandler(parcelUC parcels.ParcelUC, sessions ParcelCreator) *ParcelHandler {
	return &ParcelHandler{
		parcelUC: parcelUC,
		sessions: sessions,
	}
}

// ListParcels returns the parcels visible to the caller's active role
func (h *ParcelHandler) ListParcels(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.parcelUC.FetchParcels(c.Request().Context(), role, userID)
	if err != nil {
		logger.Error("Failed to fetch parcels",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Parcels retrieved", result)
}

// GetParcel returns a single parcel by id
func (h *ParcelHandler) GetParcel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parcel ID")
	}

	parcel, err := h.parcelUC.GetParcel(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Parcel retrieved", parcel)
}

// CreateParcel commits a parcel draft for the authenticated sender
func (h *ParcelHandler) CreateParcel(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var draft models.ParcelDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	parcel, err := h.sessions.AddParcel(c.Request().Context(), models.Actor{ID: userID, Role: role}, &draft)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Parcel created", parcel)
}

// Advance applies the single legal forward transition to a parcel
func (h *ParcelHandler) Advance(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parcel ID")
	}

	parcel, err := h.parcelUC.Advance(c.Request().Context(), id, models.Actor{ID: userID, Role: role})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Parcel status advanced", parcel)
}

// Confirm marks a delivered parcel as received
func (h *ParcelHandler) Confirm(c echo.Context) error {
	userID, role, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parcel ID")
	}

	parcel, err := h.parcelUC.Confirm(c.Request().Context(), id, models.Actor{ID: userID, Role: role})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery confirmed", parcel)
}

// Track is the public tracking-code lookup
func (h *ParcelHandler) Track(c echo.Context) error {
	code := c.Param("code")

	parcel, err := h.parcelUC.TrackByCode(c.Request().Context(), code)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}
	if parcel == nil {
		return utils.NotFoundResponse(c, "No parcel with this tracking code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Parcel found", parcel)
}
