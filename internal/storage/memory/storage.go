package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessionUser *model.User
	credentials map[string]*model.Credentials
	communities map[model.CommunityID]*model.Community
	bets        map[model.BetID]*model.Bet
	outcomes    map[model.UserID][]model.BetOutcome
	leaderboard []model.LeaderboardEntry
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New creates a new in-memory storage
func New() *Storage {
	return &Storage{
		credentials: make(map[string]*model.Credentials),
		communities: make(map[model.CommunityID]*model.Community),
		bets:        make(map[model.BetID]*model.Bet),
		outcomes:    make(map[model.UserID][]model.BetOutcome),
	}
}

// Session slot operations

func (s *Storage) SaveSessionUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := cloneUser(user)
	s.sessionUser = u
	return nil
}

func (s *Storage) GetSessionUser(_ context.Context) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sessionUser == nil {
		return nil, model.ErrSessionNotFound
	}
	return cloneUser(s.sessionUser), nil
}

func (s *Storage) ClearSessionUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionUser = nil
	return nil
}

// Credential operations

func (s *Storage) SaveCredentials(_ context.Context, creds *model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *creds
	s.credentials[creds.Email] = &c
	return nil
}

func (s *Storage) GetCredentialsByEmail(_ context.Context, email string) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.credentials[email]
	if !ok {
		return nil, model.ErrCredentialsNotFound
	}
	c := *creds
	return &c, nil
}

// Community operations

func (s *Storage) SaveCommunity(_ context.Context, community *model.Community) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *community
	c.TopMembers = append([]model.MemberSummary(nil), community.TopMembers...)
	s.communities[community.ID] = &c
	return nil
}

func (s *Storage) GetCommunity(_ context.Context, id model.CommunityID) (*model.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	community, ok := s.communities[id]
	if !ok {
		return nil, model.ErrCommunityNotFound
	}
	c := *community
	c.TopMembers = append([]model.MemberSummary(nil), community.TopMembers...)
	return &c, nil
}

func (s *Storage) ListCommunities(_ context.Context) ([]*model.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	communities := make([]*model.Community, 0, len(s.communities))
	for _, community := range s.communities {
		c := *community
		c.TopMembers = append([]model.MemberSummary(nil), community.TopMembers...)
		communities = append(communities, &c)
	}
	sort.Slice(communities, func(i, j int) bool {
		return communities[i].ID < communities[j].ID
	})
	return communities, nil
}

// Bet operations

func (s *Storage) SaveBet(_ context.Context, bet *model.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bets[bet.ID] = cloneBet(bet)
	return nil
}

func (s *Storage) GetBet(_ context.Context, id model.BetID) (*model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bet, ok := s.bets[id]
	if !ok {
		return nil, model.ErrBetNotFound
	}
	return cloneBet(bet), nil
}

func (s *Storage) ListBets(_ context.Context) ([]*model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bets := make([]*model.Bet, 0, len(s.bets))
	for _, bet := range s.bets {
		bets = append(bets, cloneBet(bet))
	}
	sort.Slice(bets, func(i, j int) bool {
		return bets[i].ID < bets[j].ID
	})
	return bets, nil
}

// Outcome history operations

func (s *Storage) AppendOutcome(_ context.Context, userID model.UserID, outcome model.BetOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outcomes[userID] = append(s.outcomes[userID], outcome)
	return nil
}

func (s *Storage) GetOutcomes(_ context.Context, userID model.UserID) ([]model.BetOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.BetOutcome(nil), s.outcomes[userID]...), nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(_ context.Context, entries []model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaderboard = append([]model.LeaderboardEntry(nil), entries...)
	return nil
}

func (s *Storage) GetLeaderboard(_ context.Context) ([]model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.LeaderboardEntry(nil), s.leaderboard...), nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.JoinedCommunities = append([]model.CommunityID(nil), u.JoinedCommunities...)
	c.Badges = append([]model.Badge(nil), u.Badges...)
	return &c
}

func cloneBet(b *model.Bet) *model.Bet {
	c := *b
	c.Options = append([]model.BetOption(nil), b.Options...)
	return &c
}
