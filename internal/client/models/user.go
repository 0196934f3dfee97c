package models

import "time"

// UserProfile is the read-mostly account snapshot returned by GET /profile.
// It goes stale after any server-side mutation (clue unlock, case solve) and
// must be refreshed explicitly.
type UserProfile struct {
	UserID           string    `json:"userId"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Points           int       `json:"points"`
	Role             string    `json:"role"`
	TotalCasesSolved int       `json:"totalCasesSolved"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == "Admin"
}
