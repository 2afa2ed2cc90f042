package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is an append-only rating left after a parcel reaches CONFIRMED
type Review struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ParcelID   uuid.UUID `json:"parcel_id" db:"parcel_id"`
	ReviewerID uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id" db:"reviewee_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReviewRequest is the payload for submitting a review
type ReviewRequest struct {
	ParcelID uuid.UUID `json:"parcel_id"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
}
