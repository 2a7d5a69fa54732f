package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// ClubCreateRequest payload for creating a club.
type ClubCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ClubUpdateRequest payload for PATCH; nil fields are left untouched.
type ClubUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply copies the set fields onto the entity.
func (r ClubUpdateRequest) Apply(club *domain.Club) {
	if r.Name != nil {
		club.Name = *r.Name
	}
	if r.Description != nil {
		club.Description = *r.Description
	}
}

// ClubView is the response shape for clubs.
type ClubView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewClubView maps the entity.
func NewClubView(club domain.Club) ClubView {
	return ClubView{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		CreatedAt:   club.CreatedAt,
		UpdatedAt:   club.UpdatedAt,
	}
}

// NewClubViews maps a page of entities.
func NewClubViews(clubs []domain.Club) []ClubView {
	views := make([]ClubView, 0, len(clubs))
	for _, club := range clubs {
		views = append(views, NewClubView(club))
	}
	return views
}
