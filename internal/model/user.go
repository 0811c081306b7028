package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// BadgeColor is the palette a badge may use
type BadgeColor string

const (
	BadgeGold   BadgeColor = "gold"
	BadgeSilver BadgeColor = "silver"
	BadgeBronze BadgeColor = "bronze"
	BadgeBlue   BadgeColor = "blue"
	BadgeGreen  BadgeColor = "green"
	BadgeRed    BadgeColor = "red"
)

// Badge is a recognition marker shown on a user's profile.
// Slice order is display order.
type Badge struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Color BadgeColor `json:"color"`
}

// WindowStats holds aggregated betting performance over a bounded window
type WindowStats struct {
	BetsPlaced   int `json:"bets_placed"`
	BetsWon      int `json:"bets_won"`
	PointsEarned int `json:"points_earned"`
	WinRate      int `json:"win_rate"`
}

// AllTimeStats extends WindowStats with streak tracking
type AllTimeStats struct {
	WindowStats
	LongestStreak int `json:"longest_streak"`
	CurrentStreak int `json:"current_streak"`
}

// Stats is the derived statistics block carried on a User
type Stats struct {
	ThisWeek  WindowStats  `json:"this_week"`
	ThisMonth WindowStats  `json:"this_month"`
	AllTime   AllTimeStats `json:"all_time"`
}

// UnrankedSentinel is the rank assigned to users who have not yet
// placed on any leaderboard
const UnrankedSentinel = 999999

// User represents a community member and their betting progression
type User struct {
	ID     UserID `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`

	Level   int `json:"level"`
	Points  int `json:"points"`
	Rank    int `json:"rank"`
	WinRate int `json:"win_rate"`

	TotalBets     int `json:"total_bets"`
	ActiveBets    int `json:"active_bets"`
	Notifications int `json:"notifications"`

	JoinedCommunities []CommunityID `json:"joined_communities"`
	Badges            []Badge       `json:"badges"`

	Stats Stats `json:"stats"`
}

// HasJoined reports whether the user is a member of the given community
func (u *User) HasJoined(id CommunityID) bool {
	for _, c := range u.JoinedCommunities {
		if c == id {
			return true
		}
	}
	return false
}

// Credentials is the stored login record for a signed-up user.
// Kept separate from User so the hash never travels with session state.
type Credentials struct {
	UserID       UserID    `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
