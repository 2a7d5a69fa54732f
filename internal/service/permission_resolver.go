package service

import (
	"context"

	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/repository"
)

// PermissionResolver computes the effective permission set for a user by
// walking every club membership and flattening the linked role permissions.
type PermissionResolver struct {
	memberships repository.MembershipRepository
	roles       repository.RoleRepository
}

// NewPermissionResolver builds the resolver.
func NewPermissionResolver(memberships repository.MembershipRepository, roles repository.RoleRepository) *PermissionResolver {
	return &PermissionResolver{memberships: memberships, roles: roles}
}

// Resolve returns the de-duplicated union of permission names granted through
// all of the user's memberships. A permission granted via two club roles
// counts once. Users without memberships get an empty set. The result order
// is not significant.
func (r *PermissionResolver) Resolve(ctx context.Context, userID string) ([]string, error) {
	_, permissions, err := r.ResolveMemberships(ctx, userID)
	return permissions, err
}

// ResolveMemberships fetches the user's memberships once and returns them
// alongside the flattened permission set, for callers that need both.
func (r *PermissionResolver) ResolveMemberships(ctx context.Context, userID string) ([]domain.Membership, []string, error) {
	memberships, err := r.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{})
	permissions := make([]string, 0)
	for _, membership := range memberships {
		names, err := r.roles.ListPermissionNames(ctx, membership.RoleID)
		if err != nil {
			return nil, nil, err
		}
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			permissions = append(permissions, name)
		}
	}
	return memberships, permissions, nil
}
