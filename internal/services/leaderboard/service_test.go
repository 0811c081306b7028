package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/betleague/sportsbet-hub/internal/dependencies/mocks"
	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/seed"
	"github.com/betleague/sportsbet-hub/internal/services/session"
	"github.com/betleague/sportsbet-hub/internal/storage/memory"
	"github.com/betleague/sportsbet-hub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	sessions *session.Manager
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.sessions = session.New(s.storage, s.clock, seed.DemoUser(), session.DefaultConfig(), testutil.NopLogger())
	s.service = New(s.storage, s.sessions)
	s.ctx = context.Background()

	s.Require().NoError(seed.Apply(s.ctx, s.storage))
	s.Require().NoError(s.sessions.Init(s.ctx))
}

// Standings tests

func (s *ServiceSuite) TestStandingsOrderedByPoints() {
	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 5)

	for i := 1; i < len(entries); i++ {
		s.GreaterOrEqual(entries[i-1].Points, entries[i].Points)
	}
}

func (s *ServiceSuite) TestStandingsAssignRanksByPosition() {
	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	for i, e := range entries {
		s.Equal(i+1, e.Rank)
	}
}

func (s *ServiceSuite) TestStandingsFlagCurrentUser() {
	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	var flagged int
	for _, e := range entries {
		if e.IsCurrentUser {
			flagged++
			s.Equal(model.UserID("user-8"), e.UserID)
		}
	}
	s.Equal(1, flagged)
}

func (s *ServiceSuite) TestStandingsRefreshCurrentUserRow() {
	points := 30000
	_, err := s.sessions.UpdateUser(s.ctx, session.Update{Points: &points})
	s.Require().NoError(err)

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	// With 30000 points the demo user now leads the board
	s.Equal(model.UserID("user-8"), entries[0].UserID)
	s.Equal(1, entries[0].Rank)
	s.Equal(30000, entries[0].Points)
}

func (s *ServiceSuite) TestStandingsWithoutSessionOmitsFlag() {
	s.Require().NoError(s.sessions.SignOut(s.ctx))

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	for _, e := range entries {
		s.False(e.IsCurrentUser)
	}
}

func (s *ServiceSuite) TestStandingsTiesBrokenByName() {
	s.Require().NoError(s.storage.SaveLeaderboard(s.ctx, []model.LeaderboardEntry{
		{UserID: "user-20", Name: "Zed", Points: 1000},
		{UserID: "user-21", Name: "Amy", Points: 1000},
	}))

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("Amy", entries[0].Name)
	s.Equal("Zed", entries[1].Name)
}

// Top tests

func (s *ServiceSuite) TestTopLimitsRows() {
	entries, err := s.service.Top(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(entries, 3)
	s.Equal(1, entries[0].Rank)
}

func (s *ServiceSuite) TestTopWithZeroReturnsAll() {
	entries, err := s.service.Top(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(entries, 5)
}

func (s *ServiceSuite) TestTopLargerThanBoardReturnsAll() {
	entries, err := s.service.Top(s.ctx, 50)
	s.Require().NoError(err)
	s.Len(entries, 5)
}
