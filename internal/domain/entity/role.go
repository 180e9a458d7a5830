// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds.
type Role string

const (
	// RolePlanner plans events and manages guests, budgets and checklists.
	RolePlanner Role = "planner"
	// RoleVendor offers event services and receives inquiries.
	RoleVendor Role = "vendor"
	// RoleViewer browses the marketplace without a planner or vendor account.
	RoleViewer Role = "viewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role a user can register with.
func (r Role) IsValid() bool {
	switch r {
	case RolePlanner, RoleVendor, RoleViewer:
		return true
	default:
		return false
	}
}

// Roles is the set of roles carried in a token.
type Roles []Role

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
