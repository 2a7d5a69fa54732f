package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/clubhub/club-service/internal/config"
	"github.com/clubhub/club-service/internal/domain"
)

const defaultExpirySeconds = 3600

// AccessClaims is the access-token payload. Permissions are a snapshot taken
// at issuance; they go stale until the next login or refresh.
type AccessClaims struct {
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// RefreshClaims is the refresh-token payload: subject plus a random jti.
// It deliberately carries no permission snapshot.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates the access/refresh token pair. Access and
// refresh tokens are signed with separate secrets.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	expiresIn     int64
}

// NewTokenIssuer builds an issuer from duration-string TTL configuration.
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	accessSeconds := ExpirySeconds(cfg.AccessTokenTTL)
	refreshSeconds := ExpirySeconds(cfg.RefreshTokenTTL)
	return &TokenIssuer{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     time.Duration(accessSeconds) * time.Second,
		refreshTTL:    time.Duration(refreshSeconds) * time.Second,
		expiresIn:     accessSeconds,
	}
}

// Issue signs a new token pair for the user. Both tokens carry a fresh jti,
// so two pairs minted within the same second still differ. The two signing
// operations have no ordering dependency and run concurrently.
func (t *TokenIssuer) Issue(user *domain.User, permissions []string) (domain.TokenPair, error) {
	now := time.Now()
	jti := uuid.NewString()

	accessClaims := &AccessClaims{
		Email:       user.Email,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	refreshClaims := &RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	var accessToken, refreshToken string
	var g errgroup.Group
	g.Go(func() error {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(t.accessSecret)
		accessToken = signed
		return err
	})
	g.Go(func() error {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(t.refreshSecret)
		refreshToken = signed
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		RefreshTokenID: jti,
		ExpiresIn:      t.expiresIn,
	}, nil
}

// ParseAccessToken validates signature and expiry and returns the claims.
func (t *TokenIssuer) ParseAccessToken(tokenStr string) (*AccessClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.accessSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token against the refresh secret.
func (t *TokenIssuer) ParseRefreshToken(tokenStr string) (*RefreshClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &RefreshClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.refreshSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*RefreshClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RefreshTTL exposes the refresh-token lifetime for the rotation store.
func (t *TokenIssuer) RefreshTTL() time.Duration {
	return t.refreshTTL
}

// ExpirySeconds parses a duration string like "45s", "30m", "2h" or "7d"
// into seconds. Unrecognized values fall back to one hour.
func ExpirySeconds(ttl string) int64 {
	if len(ttl) < 2 {
		return defaultExpirySeconds
	}
	value, err := strconv.ParseInt(ttl[:len(ttl)-1], 10, 64)
	if err != nil || value < 0 {
		return defaultExpirySeconds
	}
	switch ttl[len(ttl)-1] {
	case 's':
		return value
	case 'm':
		return value * 60
	case 'h':
		return value * 3600
	case 'd':
		return value * 86400
	default:
		return defaultExpirySeconds
	}
}
