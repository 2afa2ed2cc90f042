package constants

// NATS Subjects
const (
	// Parcel lifecycle events
	SubjectParcelCreated   = "parcel.created"
	SubjectParcelMatched   = "parcel.matched"
	SubjectParcelStatus    = "parcel.status"
	SubjectParcelConfirmed = "parcel.confirmed"

	// Trip events
	SubjectTripCreated = "trip.created"
	SubjectTripDeleted = "trip.deleted"
)
