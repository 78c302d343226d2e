package domain

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// Roles список всех допустимых ролей
var Roles = []UserRole{
	RoleAdmin,
	RoleCustomer,
}

// User represents a registered user.
// Admins manage the fleet and are never bound to bookings;
// only customers hold bookings.
type User struct {
	ID        string
	Name      string
	Email     string // уникален в рамках всей системы
	Role      UserRole
	CreatedAt time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsCustomer returns true if the user has the customer role
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// IsValidRole returns true if the role is one of the known user roles
func IsValidRole(r UserRole) bool {
	for _, valid := range Roles {
		if r == valid {
			return true
		}
	}
	return false
}
