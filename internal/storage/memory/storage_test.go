package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/betleague/sportsbet-hub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) sampleUser() *model.User {
	return &model.User{
		ID:                "user-1",
		Name:              "Alice",
		Email:             "alice@example.com",
		Level:             3,
		Points:            1200,
		Rank:              42,
		WinRate:           55,
		JoinedCommunities: []model.CommunityID{"community-1"},
		Badges: []model.Badge{
			{ID: "newbie", Label: "New Player", Color: model.BadgeBronze},
		},
	}
}

// Session slot tests

func (s *StorageSuite) TestSaveAndGetSessionUser() {
	err := s.storage.SaveSessionUser(s.ctx, s.sampleUser())
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSessionUser(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
	s.Equal("Alice", retrieved.Name)
	s.Equal([]model.CommunityID{"community-1"}, retrieved.JoinedCommunities)
}

func (s *StorageSuite) TestGetSessionUserEmptySlot() {
	_, err := s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestClearSessionUser() {
	_ = s.storage.SaveSessionUser(s.ctx, s.sampleUser())

	err := s.storage.ClearSessionUser(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.GetSessionUser(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestClearSessionUserEmptySlotIsNoop() {
	s.NoError(s.storage.ClearSessionUser(s.ctx))
}

func (s *StorageSuite) TestSessionUserIsIsolatedFromCaller() {
	user := s.sampleUser()
	_ = s.storage.SaveSessionUser(s.ctx, user)

	user.Points = 0
	user.JoinedCommunities[0] = "community-9"

	retrieved, err := s.storage.GetSessionUser(s.ctx)
	s.Require().NoError(err)
	s.Equal(1200, retrieved.Points)
	s.Equal(model.CommunityID("community-1"), retrieved.JoinedCommunities[0])
}

// Credentials tests

func (s *StorageSuite) TestSaveAndGetCredentials() {
	creds := &model.Credentials{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveCredentials(s.ctx, creds)
	s.Require().NoError(err)

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
	}

	err := s.storage.SaveCommunity(s.ctx, community)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCommunity(s.ctx, "community-1")
	s.Require().NoError(err)
	s.Equal("NBA Finals Fanatics", retrieved.Name)
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

// Bet tests

func (s *StorageSuite) TestSaveAndGetBet() {
	bet := &model.Bet{
		ID:       "bet-1",
		Title:    "Lakers vs Celtics",
		Category: model.CategoryNBA,
		Status:   model.BetActive,
		EndDate:  time.Now().Add(24 * time.Hour),
		Options: []model.BetOption{
			{ID: "opt-1", Label: "Lakers"},
			{ID: "opt-2", Label: "Celtics"},
		},
	}

	err := s.storage.SaveBet(s.ctx, bet)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBet(s.ctx, "bet-1")
	s.Require().NoError(err)
	s.Equal("Lakers vs Celtics", retrieved.Title)
	s.Len(retrieved.Options, 2)
}

func (s *StorageSuite) TestGetBetNotFound() {
	_, err := s.storage.GetBet(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrBetNotFound)
}

func (s *StorageSuite) TestBetIsIsolatedFromCaller() {
	bet := &model.Bet{
		ID:      "bet-1",
		Title:   "Original",
		Options: []model.BetOption{{ID: "opt-1", Label: "Yes"}},
	}
	_ = s.storage.SaveBet(s.ctx, bet)

	bet.Title = "Mutated"
	bet.Options[0].Participants = 99

	retrieved, err := s.storage.GetBet(s.ctx, "bet-1")
	s.Require().NoError(err)
	s.Equal("Original", retrieved.Title)
	s.Equal(0, retrieved.Options[0].Participants)
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
	s.Equal(model.BetID("bet-2"), outcomes[1].BetID)
}

func (s *StorageSuite) TestGetOutcomesEmptyHistory() {
	outcomes, err := s.storage.GetOutcomes(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(outcomes)
}

func (s *StorageSuite) TestOutcomesAreIsolatedPerUser() {
	_ = s.storage.AppendOutcome(s.ctx, "user-1", model.BetOutcome{BetID: "bet-1", Result: model.OutcomeWon})

	outcomes, err := s.storage.GetOutcomes(s.ctx, "user-2")
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
}

func (s *StorageSuite) TestGetLeaderboardEmpty() {
	entries, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}
