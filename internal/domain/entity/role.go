// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Role represents the type of role an identity can have on the platform.
type Role string

const (
	// RoleInvestor indicates an investor who funds projects.
	RoleInvestor Role = "investor"
	// RoleStartup indicates a founder who raises funds for projects.
	RoleStartup Role = "startup"
	// RoleCVA indicates the review role that approves or rejects submitted projects.
	RoleCVA Role = "cva"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleInvestor, RoleStartup, RoleCVA, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanRegister reports whether self-service registration is open to the role.
// CVA and admin accounts are provisioned out of band.
func (r Role) CanRegister() bool {
	return r == RoleInvestor || r == RoleStartup
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
