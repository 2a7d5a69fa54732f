package domain

import "time"

// Property is a physical asset owned or managed by a club.
type Property struct {
	ID          string
	ClubID      string
	Name        string
	Description string
	Location    string
	AcquiredAt  *time.Time
	ValueCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
