package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// MemberCreateRequest payload for adding a roster member.
type MemberCreateRequest struct {
	ClubID    string     `json:"clubId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	JoinedAt  *time.Time `json:"joinedAt"`
	Active    *bool      `json:"active"`
}

// MemberUpdateRequest payload for PATCH; nil fields are left untouched.
type MemberUpdateRequest struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	JoinedAt  *time.Time `json:"joinedAt"`
	Active    *bool      `json:"active"`
}

// Apply copies the set fields onto the entity.
func (r MemberUpdateRequest) Apply(member *domain.Member) {
	if r.FirstName != nil {
		member.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		member.LastName = *r.LastName
	}
	if r.Email != nil {
		member.Email = *r.Email
	}
	if r.Phone != nil {
		member.Phone = *r.Phone
	}
	if r.JoinedAt != nil {
		member.JoinedAt = *r.JoinedAt
	}
	if r.Active != nil {
		member.Active = *r.Active
	}
}

// MemberView is the response shape for roster members.
type MemberView struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"clubId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	JoinedAt  time.Time `json:"joinedAt"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewMemberView maps the entity.
func NewMemberView(member domain.Member) MemberView {
	return MemberView{
		ID:        member.ID,
		ClubID:    member.ClubID,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		Email:     member.Email,
		Phone:     member.Phone,
		JoinedAt:  member.JoinedAt,
		Active:    member.Active,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}

// NewMemberViews maps a page of entities.
func NewMemberViews(members []domain.Member) []MemberView {
	views := make([]MemberView, 0, len(members))
	for _, member := range members {
		views = append(views, NewMemberView(member))
	}
	return views
}
