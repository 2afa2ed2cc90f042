package utils

import (
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
)

// DomainErrorResponse maps a domain error to its HTTP response. Unrecognized
// errors become a 500 with a generic message so internals never leak.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case pkgerrors.Is(err, pkgerrors.ErrInvalidCredentials):
		return UnauthorizedResponse(c, pkgerrors.ErrInvalidCredentials.Error())
	case pkgerrors.Is(err, pkgerrors.ErrNotAuthenticated):
		return UnauthorizedResponse(c, pkgerrors.ErrNotAuthenticated.Error())
	case pkgerrors.Is(err, pkgerrors.ErrUnauthorized):
		return ForbiddenResponse(c, pkgerrors.ErrUnauthorized.Error())
	case pkgerrors.Is(err, pkgerrors.ErrInvalidTransition):
		return ConflictResponse(c, pkgerrors.ErrInvalidTransition.Error())
	case pkgerrors.Is(err, pkgerrors.ErrAlreadyAssigned):
		return ConflictResponse(c, pkgerrors.ErrAlreadyAssigned.Error())
	case pkgerrors.Is(err, pkgerrors.ErrReviewExists):
		return ConflictResponse(c, pkgerrors.ErrReviewExists.Error())
	case pkgerrors.Is(err, pkgerrors.ErrTripInUse):
		return ConflictResponse(c, pkgerrors.ErrTripInUse.Error())
	case pkgerrors.Is(err, pkgerrors.ErrEmailTaken):
		return ConflictResponse(c, pkgerrors.ErrEmailTaken.Error())
	case pkgerrors.Is(err, pkgerrors.ErrNotFound):
		return NotFoundResponse(c, "")
	case pkgerrors.Is(err, pkgerrors.ErrInvalidRole):
		return BadRequestResponse(c, pkgerrors.ErrInvalidRole.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}
