package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what a user can see and do. A user holds exactly one
// role at a time and may switch between the authenticated roles freely.
type Role string

const (
	RoleGuest       Role = "GUEST"
	RoleSender      Role = "SENDER"
	RoleTransporter Role = "TRANSPORTER"
	RoleReceiver    Role = "RECEIVER"
)

// ValidRole reports whether r is a role an authenticated user may hold.
func ValidRole(r Role) bool {
	switch r {
	case RoleSender, RoleTransporter, RoleReceiver:
		return true
	}
	return false
}

// User represents a registered user in the marketplace
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"fullname" db:"fullname"`
	Phone        string    `json:"phone" db:"phone"`
	Role         Role      `json:"role" db:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Rating       float64   `json:"rating" db:"rating"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the payload for login. Role is requested at login time;
// when it differs from the stored profile role the profile is updated to match.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateProfileRequest is the payload for profile edits
type UpdateProfileRequest struct {
	FullName  string `json:"fullname,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user,omitempty"`
}
