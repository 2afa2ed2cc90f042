package usecase

import (
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// forwardTransition maps each status to its single legal successor.
// PENDING is absent on purpose: leaving PENDING is an assignment, not an
// advance, and is handled by the match service. CONFIRMED is terminal.
var forwardTransition = map[models.ParcelStatus]models.ParcelStatus{
	models.ParcelStatusMatched:   models.ParcelStatusPickedUp,
	models.ParcelStatusPickedUp:  models.ParcelStatusInTransit,
	models.ParcelStatusInTransit: models.ParcelStatusDelivered,
	models.ParcelStatusDelivered: models.ParcelStatusConfirmed,
}

// NextStatus returns the single legal forward status for the given status.
// The second return is false for CONFIRMED (terminal) and for PENDING,
// whose successor depends on the type of action rather than the status.
func NextStatus(current models.ParcelStatus) (models.ParcelStatus, bool) {
	next, ok := forwardTransition[current]
	return next, ok
}

// authorizeTransition checks the trigger-role rules of the transition
// table. It assumes the transition itself (from -> to) is legal.
func authorizeTransition(parcel *models.Parcel, actor models.Actor, to models.ParcelStatus) error {
	if to == models.ParcelStatusConfirmed {
		// Receipt is confirmed by the receiver or by the sender who
		// posted the parcel. Transporters never confirm their own work.
		switch actor.Role {
		case models.RoleReceiver:
			return nil
		case models.RoleSender:
			if parcel.SenderID != actor.ID {
				return pkgerrors.ErrUnauthorized
			}
			return nil
		default:
			return pkgerrors.ErrUnauthorized
		}
	}

	// All carriage transitions (MATCHED -> PICKED_UP -> IN_TRANSIT ->
	// DELIVERED) belong to the assigned transporter only.
	if actor.Role != models.RoleTransporter {
		return pkgerrors.ErrUnauthorized
	}
	if parcel.TransporterID == nil || *parcel.TransporterID != actor.ID {
		return pkgerrors.ErrUnauthorized
	}
	return nil
}

// CanAdvance reports whether a legal transition exists from the parcel's
// current status for the acting user.
func (u *ParcelUC) CanAdvance(parcel *models.Parcel, actor models.Actor) bool {
	next, ok := NextStatus(parcel.Status)
	if !ok {
		return false
	}
	return authorizeTransition(parcel, actor, next) == nil
}
