package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// UserCreateRequest payload for creating an account via the admin API.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateRequest payload for PATCH; nil fields are left untouched.
// Password changes go through as a plaintext field and are re-hashed.
type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AccountView is the response shape for user accounts. The password hash is
// never serialized.
type AccountView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAccountView maps the entity.
func NewAccountView(user domain.User) AccountView {
	return AccountView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewAccountViews maps a page of entities.
func NewAccountViews(users []domain.User) []AccountView {
	views := make([]AccountView, 0, len(users))
	for _, user := range users {
		views = append(views, NewAccountView(user))
	}
	return views
}
