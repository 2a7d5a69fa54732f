package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserLoggedIn    EventType = "user_logged_in"
	EventTokensRefreshed EventType = "tokens_refreshed"
	EventMemberCreated   EventType = "member_created"
	EventPaymentRecorded EventType = "payment_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ClubID    string      `json:"club_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email    string `json:"email"`
	ClubName string `json:"club_name"`
}

// MemberCreatedPayload payload.
type MemberCreatedPayload struct {
	MemberID  string `json:"member_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID   string  `json:"payment_id"`
	MemberID    *string `json:"member_id,omitempty"`
	AmountCents int64   `json:"amount_cents"`
	Currency    string  `json:"currency"`
}
