package domain

import "time"

// Member is a club member on the roster. Members are club records, not
// login accounts; see User for authentication identities.
type Member struct {
	ID        string
	ClubID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	JoinedAt  time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
