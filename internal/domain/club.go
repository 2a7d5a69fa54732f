package domain

import "time"

// Club is an organizational tenant. Every role and club-scoped resource hangs
// off exactly one club.
type Club struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
