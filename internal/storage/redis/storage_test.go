package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/betleague/sportsbet-hub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Session slot tests

func (s *StorageSuite) TestSaveAndGetSessionUser() {
	user := &model.User{
		ID:                "user-1",
		Name:              "Alice",
		Email:             "alice@example.com",
		Points:            1200,
		JoinedCommunities: []model.CommunityID{"community-1"},
	}

	err := s.storage.SaveSessionUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSessionUser(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
	s.Equal(1200, retrieved.Points)
	s.Equal([]model.CommunityID{"community-1"}, retrieved.JoinedCommunities)
}

func (s *StorageSuite) TestGetSessionUserEmptySlot() {
	_, err := s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestClearSessionUser() {
	_ = s.storage.SaveSessionUser(s.ctx, &model.User{ID: "user-1"})

	err := s.storage.ClearSessionUser(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestCorruptSessionSlotSelfHeals() {
	s.Require().NoError(s.mini.Set(sessionKey(), "{not valid json"))

	_, err := s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)

	// Corrupt value is discarded so the next read behaves like an
	// empty slot too
	s.False(s.mini.Exists(sessionKey()))

	_, err = s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionSlotTTL() {
	_ = s.storage.SaveSessionUser(s.ctx, &model.User{ID: "user-1"})

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Credentials tests

func (s *StorageSuite) TestSaveAndGetCredentials() {
	creds := &model.Credentials{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	s.Require().NoError(s.storage.SaveCredentials(s.ctx, creds))

	retrieved, err := s.storage.GetCredentialsByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("hash123", retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetCredentialsNotFound() {
	_, err := s.storage.GetCredentialsByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrCredentialsNotFound)
}

// Community tests

func (s *StorageSuite) TestSaveAndGetCommunity() {
	community := &model.Community{
		ID:          "community-1",
		Name:        "NBA Finals Fanatics",
		Category:    model.CategoryNBA,
		MemberCount: 100,
		TopMembers: []model.MemberSummary{
			{ID: "user-1", Name: "CourtVision", Points: 15420},
		},
	}

	s.Require().NoError(s.storage.SaveCommunity(s.ctx, community))

	retrieved, err := s.storage.GetCommunity(s.ctx, "community-1")
	s.Require().NoError(err)
	s.Equal("NBA Finals Fanatics", retrieved.Name)
	s.Len(retrieved.TopMembers, 1)
}

func (s *StorageSuite) TestGetCommunityNotFound() {
	_, err := s.storage.GetCommunity(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCommunityNotFound)
}

func (s *StorageSuite) TestListCommunitiesSortedByID() {
	_ = s.storage.SaveCommunity(s.ctx, &model.Community{ID: "community-2", Name: "B"})
	_ = s.storage.SaveCommunity(s.ctx, &model.Community{ID: "community-1", Name: "A"})

	communities, err := s.storage.ListCommunities(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(communities, 2)
	s.Equal(model.CommunityID("community-1"), communities[0].ID)
	s.Equal(model.CommunityID("community-2"), communities[1].ID)
}

func (s *StorageSuite) TestListCommunitiesEmpty() {
	communities, err := s.storage.ListCommunities(s.ctx)
	s.Require().NoError(err)
	s.Empty(communities)
}

// Bet tests

func (s *StorageSuite) TestSaveAndGetBet() {
	bet := &model.Bet{
		ID:       "bet-1",
		Title:    "Lakers vs Celtics",
		Category: model.CategoryNBA,
		Status:   model.BetActive,
		EndDate:  time.Now().UTC().Add(24 * time.Hour),
		Options: []model.BetOption{
			{ID: "opt-1", Label: "Lakers"},
			{ID: "opt-2", Label: "Celtics"},
		},
	}

	s.Require().NoError(s.storage.SaveBet(s.ctx, bet))

	retrieved, err := s.storage.GetBet(s.ctx, "bet-1")
	s.Require().NoError(err)
	s.Equal("Lakers vs Celtics", retrieved.Title)
	s.Len(retrieved.Options, 2)
}

func (s *StorageSuite) TestGetBetNotFound() {
	_, err := s.storage.GetBet(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrBetNotFound)
}

func (s *StorageSuite) TestListBetsSortedByID() {
	_ = s.storage.SaveBet(s.ctx, &model.Bet{ID: "bet-2", Title: "B"})
	_ = s.storage.SaveBet(s.ctx, &model.Bet{ID: "bet-1", Title: "A"})

	bets, err := s.storage.ListBets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bets, 2)
	s.Equal(model.BetID("bet-1"), bets[0].ID)
	s.Equal(model.BetID("bet-2"), bets[1].ID)
}

// Outcome tests

func (s *StorageSuite) TestAppendAndGetOutcomes() {
	o1 := model.BetOutcome{BetID: "bet-1", Result: model.OutcomeWon, PointsDelta: 100}
	o2 := model.BetOutcome{BetID: "bet-2", Result: model.OutcomeLost, PointsDelta: -50}

	s.Require().NoError(s.storage.AppendOutcome(s.ctx, "user-1", o1))
	s.Require().NoError(s.storage.AppendOutcome(s.ctx, "user-1", o2))

	outcomes, err := s.storage.GetOutcomes(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(outcomes, 2)
	s.Equal(model.BetID("bet-1"), outcomes[0].BetID)
	s.Equal(100, outcomes[0].PointsDelta)
	s.Equal(model.BetID("bet-2"), outcomes[1].BetID)
}

func (s *StorageSuite) TestGetOutcomesEmptyHistory() {
	outcomes, err := s.storage.GetOutcomes(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(outcomes)
}

// Leaderboard tests

func (s *StorageSuite) TestSaveAndGetLeaderboard() {
	entries := []model.LeaderboardEntry{
		{UserID: "user-1", Name: "Alice", Rank: 1, Points: 5000},
		{UserID: "user-2", Name: "Bob", Rank: 2, Points: 4000},
	}

	s.Require().NoError(s.storage.SaveLeaderboard(s.ctx, entries))

	retrieved, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal("Alice", retrieved[0].Name)
	s.Equal(2, retrieved[1].Rank)
}

func (s *StorageSuite) TestSaveLeaderboardReplacesPrevious() {
	_ = s.storage.SaveLeaderboard(s.ctx, []model.LeaderboardEntry{
		{UserID: "user-1", Name: "Alice", Rank: 1},
	})
	_ = s.storage.SaveLeaderboard(s.ctx, []model.LeaderboardEntry{
		{UserID: "user-2", Name: "Bob", Rank: 1},
	})

	retrieved, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 1)
	s.Equal("Bob", retrieved[0].Name)
}
