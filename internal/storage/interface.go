package storage

import (
	"context"

	"github.com/betleague/sportsbet-hub/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session slot operations. The slot holds at most one serialized
	// User; GetSessionUser returns model.ErrSessionNotFound when the
	// slot is empty. A slot that fails to deserialize is discarded and
	// reported as empty, never as an error.
	SaveSessionUser(ctx context.Context, user *model.User) error
	GetSessionUser(ctx context.Context) (*model.User, error)
	ClearSessionUser(ctx context.Context) error

	// Credential operations
	SaveCredentials(ctx context.Context, creds *model.Credentials) error
	GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error)

	// Community operations
	SaveCommunity(ctx context.Context, community *model.Community) error
	GetCommunity(ctx context.Context, id model.CommunityID) (*model.Community, error)
	ListCommunities(ctx context.Context) ([]*model.Community, error)

	// Bet operations
	SaveBet(ctx context.Context, bet *model.Bet) error
	GetBet(ctx context.Context, id model.BetID) (*model.Bet, error)
	ListBets(ctx context.Context) ([]*model.Bet, error)

	// Outcome history operations. Outcomes are appended in
	// chronological order per user.
	AppendOutcome(ctx context.Context, userID model.UserID, outcome model.BetOutcome) error
	GetOutcomes(ctx context.Context, userID model.UserID) ([]model.BetOutcome, error)

	// Leaderboard operations. The leaderboard is replaced wholesale.
	SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}
