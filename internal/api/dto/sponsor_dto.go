package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// SponsorCreateRequest payload for adding a sponsor.
type SponsorCreateRequest struct {
	ClubID       string `json:"clubId"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Tier         string `json:"tier"`
	Active       *bool  `json:"active"`
}

// SponsorUpdateRequest payload for PATCH; nil fields are left untouched.
type SponsorUpdateRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Tier         *string `json:"tier"`
	Active       *bool   `json:"active"`
}

// Apply copies the set fields onto the entity.
func (r SponsorUpdateRequest) Apply(sponsor *domain.Sponsor) {
	if r.Name != nil {
		sponsor.Name = *r.Name
	}
	if r.ContactEmail != nil {
		sponsor.ContactEmail = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		sponsor.ContactPhone = *r.ContactPhone
	}
	if r.Tier != nil {
		sponsor.Tier = domain.SponsorTier(*r.Tier)
	}
	if r.Active != nil {
		sponsor.Active = *r.Active
	}
}

// SponsorView is the response shape for sponsors.
type SponsorView struct {
	ID           string    `json:"id"`
	ClubID       string    `json:"clubId"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Tier         string    `json:"tier"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewSponsorView maps the entity.
func NewSponsorView(sponsor domain.Sponsor) SponsorView {
	return SponsorView{
		ID:           sponsor.ID,
		ClubID:       sponsor.ClubID,
		Name:         sponsor.Name,
		ContactEmail: sponsor.ContactEmail,
		ContactPhone: sponsor.ContactPhone,
		Tier:         string(sponsor.Tier),
		Active:       sponsor.Active,
		CreatedAt:    sponsor.CreatedAt,
		UpdatedAt:    sponsor.UpdatedAt,
	}
}

// NewSponsorViews maps a page of entities.
func NewSponsorViews(sponsors []domain.Sponsor) []SponsorView {
	views := make([]SponsorView, 0, len(sponsors))
	for _, sponsor := range sponsors {
		views = append(views, NewSponsorView(sponsor))
	}
	return views
}
