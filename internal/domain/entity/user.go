package entity

import "time"

// UserStatus represents the administrative standing of an account.
type UserStatus string

const (
	// UserActive indicates a usable account.
	UserActive UserStatus = "active"
	// UserInactive indicates a deactivated account.
	UserInactive UserStatus = "inactive"
	// UserBanned indicates an account blocked by an administrator.
	UserBanned UserStatus = "banned"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserActive, UserInactive, UserBanned:
		return true
	default:
		return false
	}
}

// User is the authenticated identity of the platform. The Token field is only
// populated on the identity returned by login/register; directory listings
// omit it.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Company   string     `json:"company,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Status    UserStatus `json:"status,omitempty"`
	Token     string     `json:"token,omitempty"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
}
