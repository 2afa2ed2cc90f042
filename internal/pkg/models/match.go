package models

import "github.com/google/uuid"

// MatchResult is the outcome of assigning a transporter to a parcel.
// CapacityWarning is advisory: a parcel larger than the trip's declared
// capacity still matches, the mismatch is only surfaced.
type MatchResult struct {
	Parcel          *Parcel `json:"parcel"`
	CapacityWarning string  `json:"capacity_warning,omitempty"`
}

// AssignRequest is the payload for assigning a parcel to a trip
type AssignRequest struct {
	TripID uuid.UUID `json:"trip_id"`
}

// NearbyParcel is a pending parcel surfaced from the area pool,
// annotated with its distance from the query point.
type NearbyParcel struct {
	Parcel     *Parcel `json:"parcel"`
	DistanceKm float64 `json:"distance_km"`
}
