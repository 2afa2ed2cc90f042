package models

import "github.com/google/uuid"

// Actor is the authenticated identity and active role performing an
// operation, as extracted from the request token.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}
