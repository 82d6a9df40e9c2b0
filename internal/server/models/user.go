// Package models contains the server-side domain entities.
package models

import "time"

// Role is a small enumerated access level stored on the user record.
// It carries no authorization logic here.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

// User represents a registered account. PasswordHash never holds plaintext
// past the SignUp call boundary; DeletedAt marks a soft-deleted row.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	DeletedAt    *time.Time
}
