package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"  // Team lead - full access, never locked out of edits
	RoleMember Role = "member" // Regular team member
	RoleGuest  Role = "guest"  // Read-only visitor, no widgets
)

// ParseRole maps a raw role string onto the closed set. Anything unknown is a guest.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleMember:
		return RoleMember
	default:
		return RoleGuest
	}
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// IsAdmin checks if the actor is a team admin
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
