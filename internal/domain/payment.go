package domain

import "time"

// PaymentMethod enumerates how a payment was collected.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// Payment records money received by a club, optionally tied to a member.
// Amounts are stored in cents to avoid floating point.
type Payment struct {
	ID          string
	ClubID      string
	MemberID    *string
	AmountCents int64
	Currency    string
	Method      PaymentMethod
	Reference   string
	Notes       string
	PaidAt      time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
