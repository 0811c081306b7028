package response

import (
	"encoding/json"
	"net/http"

	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/services/session"
)

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Session is the session snapshot in API responses
type Session struct {
	Status  string      `json:"status"`
	User    *model.User `json:"user,omitempty"`
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
}

// SessionFromSnapshot converts a session.Snapshot to a response Session
func SessionFromSnapshot(snap session.Snapshot) Session {
	resp := Session{
		Status:  string(snap.Status),
		User:    snap.User,
		Loading: snap.Loading,
	}
	if snap.LastErr != nil {
		resp.Error = snap.LastErr.Error()
	}
	return resp
}

// UserResponse wraps a user record
type UserResponse struct {
	User *model.User `json:"user"`
}

// CommunityList wraps a list of communities
type CommunityList struct {
	Communities []*model.Community `json:"communities"`
}

// BetList wraps a list of bets
type BetList struct {
	Bets []*model.Bet `json:"bets"`
}

// Leaderboard wraps the global standings
type Leaderboard struct {
	Entries []model.LeaderboardEntry `json:"entries"`
}
