package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// PropertyCreateRequest payload for registering a club asset.
type PropertyCreateRequest struct {
	ClubID      string     `json:"clubId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	AcquiredAt  *time.Time `json:"acquiredAt"`
	ValueCents  int64      `json:"valueCents"`
}

// PropertyUpdateRequest payload for PATCH; nil fields are left untouched.
type PropertyUpdateRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	AcquiredAt  *time.Time `json:"acquiredAt"`
	ValueCents  *int64     `json:"valueCents"`
}

// Apply copies the set fields onto the entity.
func (r PropertyUpdateRequest) Apply(property *domain.Property) {
	if r.Name != nil {
		property.Name = *r.Name
	}
	if r.Description != nil {
		property.Description = *r.Description
	}
	if r.Location != nil {
		property.Location = *r.Location
	}
	if r.AcquiredAt != nil {
		property.AcquiredAt = r.AcquiredAt
	}
	if r.ValueCents != nil {
		property.ValueCents = *r.ValueCents
	}
}

// PropertyView is the response shape for properties.
type PropertyView struct {
	ID          string     `json:"id"`
	ClubID      string     `json:"clubId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	AcquiredAt  *time.Time `json:"acquiredAt,omitempty"`
	ValueCents  int64      `json:"valueCents"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewPropertyView maps the entity.
func NewPropertyView(property domain.Property) PropertyView {
	return PropertyView{
		ID:          property.ID,
		ClubID:      property.ClubID,
		Name:        property.Name,
		Description: property.Description,
		Location:    property.Location,
		AcquiredAt:  property.AcquiredAt,
		ValueCents:  property.ValueCents,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

// NewPropertyViews maps a page of entities.
func NewPropertyViews(properties []domain.Property) []PropertyView {
	views := make([]PropertyView, 0, len(properties))
	for _, property := range properties {
		views = append(views, NewPropertyView(property))
	}
	return views
}
