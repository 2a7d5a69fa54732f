package domain

// TokenPair bundles a freshly issued access/refresh token pair.
// ExpiresIn is the access-token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// RefreshTokenID is the jti embedded in RefreshToken, tracked for
	// rotation reuse detection.
	RefreshTokenID string
	ExpiresIn      int64
}

// AuthenticatedUser is the sanitized view of a user returned by login,
// registration and profile endpoints. ClubID and Role come from the user's
// earliest membership; Permissions is the union across all memberships,
// frozen at issuance time.
type AuthenticatedUser struct {
	ID          string
	Email       string
	Name        string
	ClubID      string
	Role        string
	Permissions []string
}
