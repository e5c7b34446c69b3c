package domain

import "time"

// User is a player profile. UID is issued by the identity provider.
// Points always equal the sum of PointsAwarded over the user's history.
// Streak is persisted but reserved; nothing computes it yet.
type User struct {
	UID         string
	Email       *string
	DisplayName *string
	PhotoURL    *string
	Points      int64
	Streak      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Identity is the verified caller extracted from a bearer credential.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// LeaderboardEntry is one row of the ranked points view.
type LeaderboardEntry struct {
	UID      string
	Name     *string
	PhotoURL *string
	Points   int64
}
