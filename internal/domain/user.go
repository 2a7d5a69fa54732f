package domain

import "time"

// User is the domain model for an authenticated account holder.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy with the password hash stripped, safe to embed in
// responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
