// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the marketplace. The role stored here is the single
// source of truth for what the account may access.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login identifier and primary contact email.
	Name      string    // Display name.
	Role      Role      // Account type: planner, vendor or viewer.
	AvatarURL string    // Public URL of the uploaded avatar, empty when none.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVendor reports whether the account is a vendor account.
func (u *User) IsVendor() bool {
	return u != nil && u.Role == RoleVendor
}
