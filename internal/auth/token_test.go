package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub/club-service/internal/config"
	"github.com/clubhub/club-service/internal/domain"
)

func issuerConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:    "test-access-secret",
		RefreshSecret:   "test-refresh-secret",
		AccessTokenTTL:  "1h",
		RefreshTokenTTL: "7d",
	}
}

func TestExpirySeconds(t *testing.T) {
	cases := []struct {
		ttl  string
		want int64
	}{
		{"45s", 45},
		{"15m", 900},
		{"1h", 3600},
		{"2h", 7200},
		{"7d", 604800},
		{"0s", 0},
		{"", 3600},
		{"h", 3600},
		{"garbage", 3600},
		{"-5m", 3600},
		{"10x", 3600},
	}
	for _, tc := range cases {
		t.Run(tc.ttl, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpirySeconds(tc.ttl))
		})
	}
}

func TestIssueAndParseRoundtrip(t *testing.T) {
	issuer := NewTokenIssuer(issuerConfig())
	user := &domain.User{ID: "user-1", Email: "alice@example.com"}

	pair, err := issuer.Issue(user, []string{"members.read", "members.create"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEmpty(t, pair.RefreshTokenID)
	assert.EqualValues(t, 3600, pair.ExpiresIn)

	access, err := issuer.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", access.Subject)
	assert.Equal(t, "alice@example.com", access.Email)
	assert.Equal(t, []string{"members.read", "members.create"}, access.Permissions)

	refresh, err := issuer.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refresh.Subject)
	assert.Equal(t, pair.RefreshTokenID, refresh.ID)
}

func TestIssueMintsDistinctTokensEveryCall(t *testing.T) {
	issuer := NewTokenIssuer(issuerConfig())
	user := &domain.User{ID: "user-1", Email: "alice@example.com"}

	// Same user, same permissions, back to back within the same second: the
	// per-token jti must still make both halves of the pair unique.
	first, err := issuer.Issue(user, []string{"members.read"})
	require.NoError(t, err)
	second, err := issuer.Issue(user, []string{"members.read"})
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.RefreshTokenID, second.RefreshTokenID)
}

func TestParseAccessTokenRejectsTampered(t *testing.T) {
	issuer := NewTokenIssuer(issuerConfig())
	pair, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@b.c"}, nil)
	require.NoError(t, err)

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	_, err = issuer.ParseAccessToken(tampered)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(issuerConfig())
	pair, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@b.c"}, nil)
	require.NoError(t, err)

	other := issuerConfig()
	other.AccessSecret = "another-secret"
	_, err = NewTokenIssuer(other).ParseAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	issuer := NewTokenIssuer(issuerConfig())
	pair, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@b.c"}, nil)
	require.NoError(t, err)

	// A refresh token must never pass as an access token and vice versa.
	_, err = issuer.ParseAccessToken(pair.RefreshToken)
	assert.Error(t, err)
	_, err = issuer.ParseRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := issuerConfig()
	cfg.AccessTokenTTL = "0s"
	issuer := NewTokenIssuer(cfg)

	pair, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@b.c"}, nil)
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken(pair.AccessToken)
	assert.Error(t, err)
}
