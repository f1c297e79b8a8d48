// Package models contains the domain entities persisted by the application.
package models

// UserRole identifies which principal table a session belongs to.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one of the known principal kinds.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}
