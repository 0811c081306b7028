package handler

import (
	"net/http"
	"strconv"

	"github.com/betleague/sportsbet-hub/internal/api/response"
	"github.com/betleague/sportsbet-hub/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboard *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(lb *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: lb,
	}
}

// Get handles GET /api/v1/leaderboard with an optional ?top=n limit
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			WriteError(w, NewInvalidRequestError("top must be a positive integer"))
			return
		}
		n = v
	}

	entries, err := h.leaderboard.Top(r.Context(), n)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Leaderboard{Entries: entries})
}
