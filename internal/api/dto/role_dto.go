package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// RoleCreateRequest payload for creating a role.
type RoleCreateRequest struct {
	ClubID string `json:"clubId"`
	Name   string `json:"name"`
}

// RoleUpdateRequest payload for PATCH.
type RoleUpdateRequest struct {
	Name *string `json:"name"`
}

// RolePermissionsRequest replaces a role's permission set.
type RolePermissionsRequest struct {
	PermissionIDs []string `json:"permissionIds"`
}

// RoleView is the response shape for roles.
type RoleView struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"clubId"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewRoleView maps the entity; permissions are attached separately where the
// handler loads them.
func NewRoleView(role domain.Role) RoleView {
	return RoleView{
		ID:        role.ID,
		ClubID:    role.ClubID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}

// NewRoleViews maps a page of entities.
func NewRoleViews(roles []domain.Role) []RoleView {
	views := make([]RoleView, 0, len(roles))
	for _, role := range roles {
		views = append(views, NewRoleView(role))
	}
	return views
}

// PermissionCreateRequest payload for adding a catalog permission.
type PermissionCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PermissionUpdateRequest payload for PATCH.
type PermissionUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PermissionView is the response shape for catalog permissions.
type PermissionView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPermissionView maps the entity.
func NewPermissionView(permission domain.Permission) PermissionView {
	return PermissionView{
		ID:          permission.ID,
		Name:        permission.Name,
		Description: permission.Description,
		CreatedAt:   permission.CreatedAt,
	}
}

// NewPermissionViews maps a page of entities.
func NewPermissionViews(permissions []domain.Permission) []PermissionView {
	views := make([]PermissionView, 0, len(permissions))
	for _, permission := range permissions {
		views = append(views, NewPermissionView(permission))
	}
	return views
}
