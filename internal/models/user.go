package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile types double as authorization roles.
const (
	ProfileOwner    = "Owner"
	ProfileCustomer = "Customer"
	ProfileAdmin    = "Admin"
)

// ValidProfileTypes lists the profile types accepted at registration.
var ValidProfileTypes = map[string]struct{}{
	ProfileOwner:    {},
	ProfileCustomer: {},
	ProfileAdmin:    {},
}

// User is a marketplace account; owners list clothing, customers rent it.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Telephone    *string   `db:"telephone" json:"telephone,omitempty"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	ProfileType  string    `db:"profile_type" json:"profile_type"`
	Reported     bool      `db:"reported" json:"reported"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CallerIdentity is the authenticated caller as established by the
// transport layer. The core only compares it against stored owner ids.
type CallerIdentity struct {
	UserID uuid.UUID
	Role   string
}

// HasRole reports whether the caller carries the given role.
func (c CallerIdentity) HasRole(role string) bool {
	return c.Role == role
}
