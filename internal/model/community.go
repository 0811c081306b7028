package model

// CommunityID uniquely identifies a community
type CommunityID string

// MemberSummary is the denormalized top-member entry shown on a community
type MemberSummary struct {
	ID     UserID `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Points int    `json:"points"`
}

// Community is a sport-themed betting group
type Community struct {
	ID          CommunityID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`

	MemberCount   int `json:"member_count"`
	ActiveMembers int `json:"active_members"`
	TotalBets     int `json:"total_bets"`
	WinRate       int `json:"win_rate"`

	TopMembers     []MemberSummary `json:"top_members"`
	RecentActivity string          `json:"recent_activity,omitempty"`
}

// LeaderboardEntry is one row of the global standings
type LeaderboardEntry struct {
	UserID UserID `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Level  int    `json:"level"`

	Rank         int `json:"rank"`
	Points       int `json:"points"`
	WeeklyChange int `json:"weekly_change"`
	WinRate      int `json:"win_rate"`
	TotalBets    int `json:"total_bets"`
	Streak       int `json:"streak"`

	Badges        []Badge `json:"badges,omitempty"`
	IsCurrentUser bool    `json:"is_current_user,omitempty"`
}
