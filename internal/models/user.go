package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles. A user holds exactly one role; the users table enforces it with a
// CHECK constraint, so mutually-exclusive role flags cannot drift apart.
const (
	RoleAdmin      = "admin"
	RoleSponsor    = "sponsor"
	RoleInfluencer = "influencer"
)

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSponsor || role == RoleInfluencer
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`

	// Sponsor profile
	Industry *string `json:"industry,omitempty"`
	Budget   *int64  `json:"budget,omitempty"`

	// Influencer profile
	Category *string `json:"category,omitempty"`
	Niche    *string `json:"niche,omitempty"`
	Reach    *int64  `json:"reach,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
