package models

import "time"

// ParcelEvent is published on NATS whenever a parcel's lifecycle advances
// or a transporter is assigned. Consumers use it to refresh any cached
// session state for the affected parties.
type ParcelEvent struct {
	ParcelID      string       `json:"parcel_id"`
	SenderID      string       `json:"sender_id"`
	TransporterID string       `json:"transporter_id,omitempty"`
	TripID        string       `json:"trip_id,omitempty"`
	FromStatus    ParcelStatus `json:"from_status,omitempty"`
	Status        ParcelStatus `json:"status"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

// TripEvent is published on NATS when a trip is created or deleted
type TripEvent struct {
	TripID        string    `json:"trip_id"`
	TransporterID string    `json:"transporter_id"`
	Deleted       bool      `json:"deleted,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
