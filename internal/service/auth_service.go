package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clubhub/club-service/internal/auth"
	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/events"
	"github.com/clubhub/club-service/internal/repository"
	apperrors "github.com/clubhub/club-service/pkg/util"
)

// Resources covered by the bootstrap permission catalog.
var bootstrapResources = []string{
	"users", "clubs", "roles", "permissions",
	"members", "sponsors", "payments", "activities", "properties",
}

func grantsFor(actions ...string) []string {
	grants := make([]string, 0, len(bootstrapResources)*len(actions))
	for _, resource := range bootstrapResources {
		for _, action := range actions {
			grants = append(grants, resource+"."+action)
		}
	}
	return grants
}

// AuthService coordinates registration, login, refresh and profile flows.
type AuthService struct {
	users        repository.UserRepository
	memberships  repository.MembershipRepository
	bootstrap    repository.BootstrapRepository
	refreshStore repository.RefreshTokenStore
	resolver     *PermissionResolver
	tokens       *auth.TokenIssuer
	dispatcher   events.Dispatcher
	bcryptCost   int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	MembershipRepo repository.MembershipRepository
	BootstrapRepo  repository.BootstrapRepository
	RefreshStore   repository.RefreshTokenStore
	Resolver       *PermissionResolver
	Tokens         *auth.TokenIssuer
	Dispatcher     events.Dispatcher
	BcryptCost     int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:        deps.UserRepo,
		memberships:  deps.MembershipRepo,
		bootstrap:    deps.BootstrapRepo,
		refreshStore: deps.RefreshStore,
		resolver:     deps.Resolver,
		tokens:       deps.Tokens,
		dispatcher:   deps.Dispatcher,
		bcryptCost:   deps.BcryptCost,
	}
}

// Login validates credentials and issues a fresh token pair. Unknown email
// and wrong password are indistinguishable to the caller; the unknown-email
// path still pays a bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthenticatedUser, domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.CompareDummy(password)
			return nil, domain.TokenPair{}, apperrors.NewInvalidCredentials()
		}
		return nil, domain.TokenPair{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, domain.TokenPair{}, apperrors.NewInvalidCredentials()
	}

	view, pair, err := s.issueFor(ctx, user)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, user.ID, view.ClubID, nil)
	return view, pair, nil
}

// Register bootstraps a new account: user, club, default roles with their
// permission grants and the admin membership are written in one transaction,
// then a token pair is issued.
func (s *AuthService) Register(ctx context.Context, email, password, name, clubName string) (*domain.AuthenticatedUser, domain.TokenPair, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	account, err := s.bootstrap.RegisterAccount(ctx, repository.RegisterAccountParams{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		ClubName:     clubName,
		RoleGrants: map[string][]string{
			domain.RoleAdmin:   grantsFor("read", "create", "update", "delete"),
			domain.RoleManager: grantsFor("read", "create", "update"),
			domain.RoleMember:  grantsFor("read"),
		},
		AdminRole: domain.RoleAdmin,
	})
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	view, pair, err := s.issueFor(ctx, account.User)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	s.publish(ctx, events.EventUserRegistered, account.User.ID, account.Club.ID, events.UserRegisteredPayload{
		Email:    account.User.Email,
		ClubName: account.Club.Name,
	})
	return view, pair, nil
}

// Refresh rotates a refresh token into a brand-new pair. Permissions are
// recomputed here, making refresh the point where a stale snapshot in an old
// access token gets corrected. The presented jti must be the current one for
// the user; anything already rotated away is rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return domain.TokenPair{}, apperrors.NewInvalidRefreshToken()
	}

	if err := s.refreshStore.Verify(ctx, claims.Subject, claims.ID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenUnknown) {
			return domain.TokenPair{}, apperrors.NewInvalidRefreshToken()
		}
		return domain.TokenPair{}, err
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TokenPair{}, apperrors.NewUserNotFound()
		}
		return domain.TokenPair{}, err
	}

	permissions, err := s.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	pair, err := s.tokens.Issue(user, permissions)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.refreshStore.Save(ctx, user.ID, pair.RefreshTokenID, s.tokens.RefreshTTL()); err != nil {
		return domain.TokenPair{}, err
	}

	s.publish(ctx, events.EventTokensRefreshed, user.ID, "", nil)
	return pair, nil
}

// Profile returns the sanitized account view for the authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.AuthenticatedUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &domain.AuthenticatedUser{ID: user.ID, Email: user.Email, Name: user.Name}
	memberships, err := s.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) > 0 {
		view.ClubID = memberships[0].ClubID
		view.Role = memberships[0].RoleName
	}
	return view, nil
}

// issueFor resolves permissions, signs a pair and stores the refresh jti.
// The single membership fetch feeds both the permission set and the
// ClubID/Role view fields.
func (s *AuthService) issueFor(ctx context.Context, user *domain.User) (*domain.AuthenticatedUser, domain.TokenPair, error) {
	memberships, permissions, err := s.resolver.ResolveMemberships(ctx, user.ID)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	pair, err := s.tokens.Issue(user, permissions)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}
	if err := s.refreshStore.Save(ctx, user.ID, pair.RefreshTokenID, s.tokens.RefreshTTL()); err != nil {
		return nil, domain.TokenPair{}, err
	}

	view := &domain.AuthenticatedUser{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Permissions: permissions,
	}
	if len(memberships) > 0 {
		view.ClubID = memberships[0].ClubID
		view.Role = memberships[0].RoleName
	}
	return view, pair, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID, clubID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		ClubID:    clubID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
