package leaderboard

import (
	"context"
	"errors"
	"sort"

	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/services/session"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

// Service derives the global standings view
type Service struct {
	storage  storage.Storage
	sessions *session.Manager
}

// New creates a new leaderboard service
func New(store storage.Storage, sessions *session.Manager) *Service {
	return &Service{
		storage:  store,
		sessions: sessions,
	}
}

// Standings returns the leaderboard ordered by points (ties broken by
// name), with ranks assigned by position. The current user's row is
// refreshed from live session state and flagged.
func (s *Service) Standings(ctx context.Context) ([]model.LeaderboardEntry, error) {
	entries, err := s.storage.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.sessions.CurrentUser()
	if err != nil && !errors.Is(err, model.ErrNoActiveSession) {
		return nil, err
	}

	for i := range entries {
		entries[i].IsCurrentUser = false
		if user != nil && entries[i].UserID == user.ID {
			entries[i].IsCurrentUser = true
			entries[i].Points = user.Points
			entries[i].WinRate = user.WinRate
			entries[i].TotalBets = user.TotalBets
			entries[i].Streak = user.Stats.AllTime.CurrentStreak
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Name < entries[j].Name
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// Top returns the first n standings rows
func (s *Service) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	entries, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries, nil
}
