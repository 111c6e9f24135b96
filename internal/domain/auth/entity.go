package auth

import "time"

// Terminal is a registered clock-in device at a branch. Terminals
// authenticate with a device code and secret and receive a short-lived
// token scoped to their branch.
type Terminal struct {
	ID         string
	BranchID   string
	Code       string
	SecretHash string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
