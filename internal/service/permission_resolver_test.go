package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub/club-service/internal/domain"
)

type fakeMembershipRepo struct {
	byUser    map[string][]domain.Membership
	listCalls int
}

func (f *fakeMembershipRepo) Create(_ context.Context, _ *domain.Membership) error { return nil }
func (f *fakeMembershipRepo) Delete(_ context.Context, _ string) error             { return nil }
func (f *fakeMembershipRepo) ListByUser(_ context.Context, userID string) ([]domain.Membership, error) {
	f.listCalls++
	return f.byUser[userID], nil
}

type fakeRoleRepo struct {
	permsByRole map[string][]string
}

func (f *fakeRoleRepo) Create(_ context.Context, _ *domain.Role) error { return nil }
func (f *fakeRoleRepo) Update(_ context.Context, _ *domain.Role) error { return nil }
func (f *fakeRoleRepo) Delete(_ context.Context, _ string) error       { return nil }
func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (*domain.Role, error) {
	return &domain.Role{ID: id}, nil
}
func (f *fakeRoleRepo) List(_ context.Context, _ string, _, _ int) ([]domain.Role, int64, error) {
	return nil, 0, nil
}
func (f *fakeRoleRepo) ListPermissionNames(_ context.Context, roleID string) ([]string, error) {
	return f.permsByRole[roleID], nil
}
func (f *fakeRoleRepo) ReplacePermissions(_ context.Context, roleID string, permissionIDs []string) error {
	return nil
}

func TestResolveUnionsAcrossMemberships(t *testing.T) {
	memberships := &fakeMembershipRepo{byUser: map[string][]domain.Membership{
		"alice": {
			{ID: "m1", UserID: "alice", ClubID: "chess", RoleID: "chess-admin", RoleName: domain.RoleAdmin},
			{ID: "m2", UserID: "alice", ClubID: "tennis", RoleID: "tennis-member", RoleName: domain.RoleMember},
		},
	}}
	roles := &fakeRoleRepo{permsByRole: map[string][]string{
		"chess-admin":   {"members.read", "members.create"},
		"tennis-member": {"members.read", "activities.read"},
	}}

	resolver := NewPermissionResolver(memberships, roles)
	permissions, err := resolver.Resolve(context.Background(), "alice")
	require.NoError(t, err)

	// members.read is granted through both clubs but counts once.
	assert.ElementsMatch(t, []string{"members.read", "members.create", "activities.read"}, permissions)
}

func TestResolveWithoutMembershipsYieldsEmptySet(t *testing.T) {
	resolver := NewPermissionResolver(&fakeMembershipRepo{byUser: map[string][]domain.Membership{}}, &fakeRoleRepo{})

	permissions, err := resolver.Resolve(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, permissions)
	assert.Empty(t, permissions)
}
