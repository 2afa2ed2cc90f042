package errors

import "errors"

// Domain error taxonomy. Usecases return these sentinels (possibly wrapped
// with fmt.Errorf and %w); handlers map them to HTTP status codes.
var (
	// ErrInvalidCredentials is returned when login fails on bad email/password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated is returned when an action requires a session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidTransition is returned when a parcel status change violates
	// the lifecycle transition table
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnauthorized is returned when the acting role or identity does not
	// match the target transition's trigger rule
	ErrUnauthorized = errors.New("not authorized for this action")

	// ErrAlreadyAssigned is returned when an assignment races against another
	// transporter and loses the conditional write
	ErrAlreadyAssigned = errors.New("parcel already assigned to a transporter")

	// ErrNotFound is returned when a resource does not exist. Distinguished
	// from transport-level failures, which wrap ErrTransportFailure.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRole is returned when a role value is not a known role
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmailTaken is returned when registering with an email that exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrReviewExists is returned when a reviewer already reviewed a parcel
	ErrReviewExists = errors.New("review already submitted for this parcel")

	// ErrTripInUse is returned when deleting a trip that is fulfilling a parcel
	ErrTripInUse = errors.New("trip is actively fulfilling a parcel")

	// ErrTransportFailure marks a network or service failure that is safe
	// to retry by re-invoking the same action
	ErrTransportFailure = errors.New("transient service failure")
)

// Is reports whether any error in err's chain matches target.
// Re-exported so callers importing this package as their errors package
// keep the stdlib matching semantics.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
