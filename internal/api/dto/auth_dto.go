package dto

import "github.com/clubhub/club-service/internal/domain"

// LoginRequest payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	ClubName string `json:"clubName"`
}

// RefreshRequest payload for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserView is the sanitized account shape embedded in auth responses.
type UserView struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	ClubID      string   `json:"clubId"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// AuthResponse is the uniform shape of login and register responses.
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int64    `json:"expiresIn"`
	User         UserView `json:"user"`
}

// TokenResponse is the refresh response, without a user view.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// NewUserView maps the domain view model.
func NewUserView(user domain.AuthenticatedUser) UserView {
	return UserView{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		ClubID:      user.ClubID,
		Role:        user.Role,
		Permissions: user.Permissions,
	}
}

// NewAuthResponse assembles the login/register response.
func NewAuthResponse(user domain.AuthenticatedUser, pair domain.TokenPair) AuthResponse {
	return AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         NewUserView(user),
	}
}

// NewTokenResponse assembles the refresh response.
func NewTokenResponse(pair domain.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}
