package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated actor in the system. Roles holds the group
// memberships carried in the token payload; the first entry is the effective
// role consulted by the access gate.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EffectiveRole returns the first role, or "" when the user has none.
func (u *User) EffectiveRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0]
}

// ValidRole reports whether role belongs to the closed role enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}
