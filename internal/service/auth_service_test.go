package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubhub/club-service/internal/auth"
	"github.com/clubhub/club-service/internal/config"
	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/repository"
	apperrors "github.com/clubhub/club-service/pkg/util"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
	for _, user := range users {
		repo.byID[user.ID] = user
		repo.byEmail[user.Email] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(_ context.Context, _ string) error       { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

type fakeBootstrapRepo struct {
	lastParams repository.RegisterAccountParams
	existing   map[string]bool
}

func (f *fakeBootstrapRepo) RegisterAccount(_ context.Context, params repository.RegisterAccountParams) (*repository.RegisteredAccount, error) {
	if f.existing[params.Email] {
		return nil, apperrors.NewEmailAlreadyExists(params.Email)
	}
	f.lastParams = params
	return &repository.RegisteredAccount{
		User: &domain.User{ID: "user-new", Name: params.Name, Email: params.Email, PasswordHash: params.PasswordHash},
		Club: &domain.Club{ID: "club-new", Name: params.ClubName},
		Role: &domain.Role{ID: "role-admin", ClubID: "club-new", Name: params.AdminRole},
	}, nil
}

type fakeRefreshStore struct {
	current map[string]string
}

func newFakeRefreshStore() *fakeRefreshStore {
	return &fakeRefreshStore{current: map[string]string{}}
}

func (f *fakeRefreshStore) Save(_ context.Context, userID, tokenID string, _ time.Duration) error {
	f.current[userID] = tokenID
	return nil
}
func (f *fakeRefreshStore) Verify(_ context.Context, userID, tokenID string) error {
	if f.current[userID] != tokenID {
		return repository.ErrRefreshTokenUnknown
	}
	return nil
}
func (f *fakeRefreshStore) Revoke(_ context.Context, userID string) error {
	delete(f.current, userID)
	return nil
}

type authFixture struct {
	service    *AuthService
	users      *fakeUserRepo
	bootstrap  *fakeBootstrapRepo
	store      *fakeRefreshStore
	roles      *fakeRoleRepo
	tokens     *auth.TokenIssuer
	membership *fakeMembershipRepo
}

func newAuthFixture(t *testing.T, users ...*domain.User) *authFixture {
	t.Helper()

	userRepo := newFakeUserRepo(users...)
	membershipRepo := &fakeMembershipRepo{byUser: map[string][]domain.Membership{}}
	roleRepo := &fakeRoleRepo{permsByRole: map[string][]string{}}
	bootstrapRepo := &fakeBootstrapRepo{existing: map[string]bool{}}
	store := newFakeRefreshStore()
	tokens := auth.NewTokenIssuer(config.AuthConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  "1h",
		RefreshTokenTTL: "7d",
	})

	svc := NewAuthService(AuthDependencies{
		UserRepo:       userRepo,
		MembershipRepo: membershipRepo,
		BootstrapRepo:  bootstrapRepo,
		RefreshStore:   store,
		Resolver:       NewPermissionResolver(membershipRepo, roleRepo),
		Tokens:         tokens,
		BcryptCost:     bcrypt.MinCost,
	})

	return &authFixture{
		service:    svc,
		users:      userRepo,
		bootstrap:  bootstrapRepo,
		store:      store,
		roles:      roleRepo,
		tokens:     tokens,
		membership: membershipRepo,
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	return domainErr.Code
}

func TestLoginIssuesTokensWithResolvedPermissions(t *testing.T) {
	alice := &domain.User{ID: "alice", Name: "Alice", Email: "alice@example.com", PasswordHash: mustHash(t, "secret")}
	fx := newAuthFixture(t, alice)
	fx.membership.byUser["alice"] = []domain.Membership{
		{UserID: "alice", ClubID: "chess", RoleID: "chess-admin", RoleName: domain.RoleAdmin},
	}
	fx.roles.permsByRole["chess-admin"] = []string{"members.read", "members.create"}

	view, pair, err := fx.service.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "chess", view.ClubID)
	assert.Equal(t, domain.RoleAdmin, view.Role)
	assert.ElementsMatch(t, []string{"members.read", "members.create"}, view.Permissions)

	claims, err := fx.tokens.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.ElementsMatch(t, []string{"members.read", "members.create"}, claims.Permissions)

	// The issued refresh jti becomes the current one for the user.
	assert.Equal(t, pair.RefreshTokenID, fx.store.current["alice"])

	// One membership fetch serves both the permission set and the view.
	assert.Equal(t, 1, fx.membership.listCalls)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	alice := &domain.User{ID: "alice", Email: "alice@example.com", PasswordHash: mustHash(t, "secret")}
	fx := newAuthFixture(t, alice)

	_, _, wrongPassword := fx.service.Login(context.Background(), "alice@example.com", "nope")
	_, _, unknownEmail := fx.service.Login(context.Background(), "ghost@example.com", "nope")

	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, wrongPassword))
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRegisterGrantsTieredRoles(t *testing.T) {
	fx := newAuthFixture(t)

	view, pair, err := fx.service.Register(context.Background(), "bob@example.com", "secret", "Bob", "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", view.Email)
	assert.NotEmpty(t, pair.AccessToken)

	grants := fx.bootstrap.lastParams.RoleGrants
	require.Contains(t, grants, domain.RoleAdmin)
	require.Contains(t, grants, domain.RoleManager)
	require.Contains(t, grants, domain.RoleMember)

	assert.Contains(t, grants[domain.RoleAdmin], "members.delete")
	assert.Contains(t, grants[domain.RoleManager], "members.update")
	assert.NotContains(t, grants[domain.RoleManager], "members.delete")
	assert.Contains(t, grants[domain.RoleMember], "members.read")
	assert.NotContains(t, grants[domain.RoleMember], "members.create")

	// The stored hash must verify against the submitted password.
	require.NoError(t, auth.ComparePassword(fx.bootstrap.lastParams.PasswordHash, "secret"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	fx := newAuthFixture(t)
	fx.bootstrap.existing["taken@example.com"] = true

	_, _, err := fx.service.Register(context.Background(), "taken@example.com", "secret", "Eve", "Club")
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errorCode(t, err))
}

func TestRefreshRotatesAndRejectsReuse(t *testing.T) {
	alice := &domain.User{ID: "alice", Email: "alice@example.com", PasswordHash: mustHash(t, "secret")}
	fx := newAuthFixture(t, alice)

	_, first, err := fx.service.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	second, err := fx.service.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshTokenID, second.RefreshTokenID)
	assert.Equal(t, second.RefreshTokenID, fx.store.current["alice"])

	// Even an immediate refresh with unchanged permissions yields a new
	// access token, not a re-signed copy of the old one.
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-away token is no longer accepted.
	_, err = fx.service.Refresh(context.Background(), first.RefreshToken)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", errorCode(t, err))
}

func TestRefreshRecomputesPermissionSnapshot(t *testing.T) {
	alice := &domain.User{ID: "alice", Email: "alice@example.com", PasswordHash: mustHash(t, "secret")}
	fx := newAuthFixture(t, alice)
	fx.membership.byUser["alice"] = []domain.Membership{
		{UserID: "alice", ClubID: "chess", RoleID: "chess-admin", RoleName: domain.RoleAdmin},
	}
	fx.roles.permsByRole["chess-admin"] = []string{"members.read"}

	_, first, err := fx.service.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	// Grants change after login; the old access token keeps its snapshot but
	// the refreshed one picks up the new set.
	fx.roles.permsByRole["chess-admin"] = []string{"members.read", "members.delete"}

	refreshed, err := fx.service.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	oldClaims, err := fx.tokens.ParseAccessToken(first.AccessToken)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"members.read"}, oldClaims.Permissions)

	newClaims, err := fx.tokens.ParseAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"members.read", "members.delete"}, newClaims.Permissions)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	fx := newAuthFixture(t)
	_, err := fx.service.Refresh(context.Background(), "not-a-jwt")
	assert.Equal(t, "INVALID_REFRESH_TOKEN", errorCode(t, err))
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	alice := &domain.User{ID: "alice", Email: "alice@example.com", PasswordHash: mustHash(t, "secret")}
	fx := newAuthFixture(t, alice)

	_, pair, err := fx.service.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	delete(fx.users.byID, "alice")
	_, err = fx.service.Refresh(context.Background(), pair.RefreshToken)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, err))
}
