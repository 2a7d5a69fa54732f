package domain

import "time"

// Default role names created for every new club.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleMember  = "MEMBER"
)

// Role is a named bundle of permissions scoped to one club.
type Role struct {
	ID        string
	ClubID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Permission is a global, club-independent capability, unique by name.
// Names follow the resource.action convention, e.g. "members.read".
type Permission struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// RolePermission links a role with a permission.
type RolePermission struct {
	RoleID       string
	PermissionID string
}

// Membership joins a user to a club with an assigned role. At most one
// membership exists per (user, club) pair.
type Membership struct {
	ID        string
	UserID    string
	ClubID    string
	RoleID    string
	RoleName  string
	CreatedAt time.Time
}
