package dto

import (
	"time"

	"github.com/clubhub/club-service/internal/domain"
)

// PaymentCreateRequest payload for recording a payment.
type PaymentCreateRequest struct {
	ClubID      string     `json:"clubId"`
	MemberID    *string    `json:"memberId"`
	AmountCents int64      `json:"amountCents"`
	Currency    string     `json:"currency"`
	Method      string     `json:"method"`
	Reference   string     `json:"reference"`
	Notes       string     `json:"notes"`
	PaidAt      *time.Time `json:"paidAt"`
}

// PaymentUpdateRequest payload for PATCH; nil fields are left untouched.
type PaymentUpdateRequest struct {
	MemberID    *string    `json:"memberId"`
	AmountCents *int64     `json:"amountCents"`
	Currency    *string    `json:"currency"`
	Method      *string    `json:"method"`
	Reference   *string    `json:"reference"`
	Notes       *string    `json:"notes"`
	PaidAt      *time.Time `json:"paidAt"`
}

// Apply copies the set fields onto the entity.
func (r PaymentUpdateRequest) Apply(payment *domain.Payment) {
	if r.MemberID != nil {
		payment.MemberID = r.MemberID
	}
	if r.AmountCents != nil {
		payment.AmountCents = *r.AmountCents
	}
	if r.Currency != nil {
		payment.Currency = *r.Currency
	}
	if r.Method != nil {
		payment.Method = domain.PaymentMethod(*r.Method)
	}
	if r.Reference != nil {
		payment.Reference = *r.Reference
	}
	if r.Notes != nil {
		payment.Notes = *r.Notes
	}
	if r.PaidAt != nil {
		payment.PaidAt = *r.PaidAt
	}
}

// PaymentView is the response shape for payments.
type PaymentView struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"clubId"`
	MemberID    *string   `json:"memberId,omitempty"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference"`
	Notes       string    `json:"notes"`
	PaidAt      time.Time `json:"paidAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewPaymentView maps the entity.
func NewPaymentView(payment domain.Payment) PaymentView {
	return PaymentView{
		ID:          payment.ID,
		ClubID:      payment.ClubID,
		MemberID:    payment.MemberID,
		AmountCents: payment.AmountCents,
		Currency:    payment.Currency,
		Method:      string(payment.Method),
		Reference:   payment.Reference,
		Notes:       payment.Notes,
		PaidAt:      payment.PaidAt,
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
	}
}

// NewPaymentViews maps a page of entities.
func NewPaymentViews(payments []domain.Payment) []PaymentView {
	views := make([]PaymentView, 0, len(payments))
	for _, payment := range payments {
		views = append(views, NewPaymentView(payment))
	}
	return views
}
