package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a transporter trip
type TripStatus string

const (
	TripStatusPlanned    TripStatus = "PLANNED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
)

// Trip represents a transporter's offered route, capacity and time window
type Trip struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	TransporterID   uuid.UUID  `json:"transporter_id" db:"transporter_id"`
	TransporterName string     `json:"transporter_name,omitempty" db:"transporter_name"`
	OriginLabel     string     `json:"origin" db:"origin_label"`
	DestLabel       string     `json:"destination" db:"dest_label"`
	DepartureDate   time.Time  `json:"departure_date" db:"departure_date"`
	ArrivalDate     *time.Time `json:"arrival_date,omitempty" db:"arrival_date"`
	Capacity        ParcelSize `json:"capacity" db:"capacity"`
	Price           float64    `json:"price" db:"price"`
	Status          TripStatus `json:"status" db:"status"`
	Rating          float64    `json:"rating" db:"rating"`
	SuccessRate     *float64   `json:"success_rate,omitempty" db:"success_rate"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// TripDraft is the payload for publishing a new trip
type TripDraft struct {
	OriginLabel   string     `json:"origin"`
	DestLabel     string     `json:"destination"`
	DepartureDate time.Time  `json:"departure_date"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty"`
	Capacity      ParcelSize `json:"capacity"`
	Price         float64    `json:"price"`
}

// Validate checks the trip draft for completeness.
func (d *TripDraft) Validate() []ValidationError {
	var errs []ValidationError

	if d.OriginLabel == "" {
		errs = append(errs, ValidationError{Field: "origin", Message: "origin is required"})
	}
	if d.DestLabel == "" {
		errs = append(errs, ValidationError{Field: "destination", Message: "destination is required"})
	}
	if d.DepartureDate.IsZero() {
		errs = append(errs, ValidationError{Field: "departure_date", Message: "departure date is required"})
	}
	if !ValidSize(d.Capacity) {
		errs = append(errs, ValidationError{Field: "capacity", Message: "capacity must be one of S, M, L, XL"})
	}

	return errs
}
