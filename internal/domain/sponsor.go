package domain

import "time"

// SponsorTier ranks sponsor packages.
type SponsorTier string

const (
	SponsorTierBronze SponsorTier = "BRONZE"
	SponsorTierSilver SponsorTier = "SILVER"
	SponsorTierGold   SponsorTier = "GOLD"
)

// Sponsor models an external backer of a club.
type Sponsor struct {
	ID           string
	ClubID       string
	Name         string
	ContactEmail string
	ContactPhone string
	Tier         SponsorTier
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
