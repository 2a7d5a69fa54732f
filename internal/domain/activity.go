package domain

import "time"

// Activity is a scheduled club event or recurring program entry.
type Activity struct {
	ID          string
	ClubID      string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
