package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// ActivityCreateRequest payload for scheduling an activity.
type ActivityCreateRequest struct {
	ClubID      string     `json:"clubId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
}

// ActivityUpdateRequest payload for PATCH; nil fields are left untouched.
type ActivityUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
}

// Apply copies the set fields onto the entity.
func (r ActivityUpdateRequest) Apply(activity *domain.Activity) {
	if r.Title != nil {
		activity.Title = *r.Title
	}
	if r.Description != nil {
		activity.Description = *r.Description
	}
	if r.Location != nil {
		activity.Location = *r.Location
	}
	if r.StartsAt != nil {
		activity.StartsAt = *r.StartsAt
	}
	if r.EndsAt != nil {
		activity.EndsAt = r.EndsAt
	}
}

// ActivityView is the response shape for activities.
type ActivityView struct {
	ID          string     `json:"id"`
	ClubID      string     `json:"clubId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewActivityView maps the entity.
func NewActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		ID:          activity.ID,
		ClubID:      activity.ClubID,
		Title:       activity.Title,
		Description: activity.Description,
		Location:    activity.Location,
		StartsAt:    activity.StartsAt,
		EndsAt:      activity.EndsAt,
		CreatedAt:   activity.CreatedAt,
		UpdatedAt:   activity.UpdatedAt,
	}
}

// NewActivityViews maps a page of entities.
func NewActivityViews(activities []domain.Activity) []ActivityView {
	views := make([]ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, NewActivityView(activity))
	}
	return views
}
