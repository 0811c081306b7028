package community

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
	s.service = New(s.storage, s.sessions, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(seed.Apply(s.ctx, s.storage))
	s.Require().NoError(s.sessions.Init(s.ctx))
}

// List and Get tests

func (s *ServiceSuite) TestListReturnsSeededCommunities() {
	communities, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(communities, 4)
}

func (s *ServiceSuite) TestGetReturnsCommunity() {
	community, err := s.service.Get(s.ctx, "community-1")
	s.Require().NoError(err)
	s.Equal("NBA Finals Fanatics", community.Name)
}

func (s *ServiceSuite) TestGetFailsForUnknownCommunity() {
	_, err := s.service.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCommunityNotFound)
}

// Join tests

func (s *ServiceSuite) TestJoinAddsMembership() {
	// Demo user starts in community-1 and community-3
	community, err := s.service.Join(s.ctx, "community-2")
	s.Require().NoError(err)

	user, err := s.sessions.CurrentUser()
	s.Require().NoError(err)
	s.True(user.HasJoined("community-2"))
	s.Len(user.JoinedCommunities, 3)

	s.Equal(model.CommunityID("community-2"), community.ID)
}

func (s *ServiceSuite) TestJoinIncrementsMemberCount() {
	before, _ := s.service.Get(s.ctx, "community-2")

	_, err := s.service.Join(s.ctx, "community-2")
	s.Require().NoError(err)

	after, _ := s.service.Get(s.ctx, "community-2")
	s.Equal(before.MemberCount+1, after.MemberCount)
}

func (s *ServiceSuite) TestJoinAppliesSimulatedLatency() {
	s.clock.SleepCalls = nil

	_, err := s.service.Join(s.ctx, "community-2")
	s.Require().NoError(err)

	s.Require().Len(s.clock.SleepCalls, 1)
	s.Equal(time.Second, s.clock.SleepCalls[0])
}

func (s *ServiceSuite) TestJoinFailsWhenAlreadyJoined() {
	_, err := s.service.Join(s.ctx, "community-1")
	s.ErrorIs(err, model.ErrAlreadyJoined)
}

func (s *ServiceSuite) TestJoinFailsForUnknownCommunity() {
	_, err := s.service.Join(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCommunityNotFound)
}

func (s *ServiceSuite) TestJoinFailsWithoutSession() {
	s.Require().NoError(s.sessions.SignOut(s.ctx))

	_, err := s.service.Join(s.ctx, "community-2")
	s.ErrorIs(err, model.ErrNoActiveSession)
}

func (s *ServiceSuite) TestJoinPersistsMembership() {
	_, err := s.service.Join(s.ctx, "community-2")
	s.Require().NoError(err)

	stored, err := s.storage.GetSessionUser(s.ctx)
	s.Require().NoError(err)
	s.True(stored.HasJoined("community-2"))
}

// Leave tests

func (s *ServiceSuite) TestLeaveRemovesMembership() {
	_, err := s.service.Leave(s.ctx, "community-1")
	s.Require().NoError(err)

	user, err := s.sessions.CurrentUser()
	s.Require().NoError(err)
	s.False(user.HasJoined("community-1"))
	s.True(user.HasJoined("community-3"))
}

func (s *ServiceSuite) TestLeaveDecrementsMemberCount() {
	before, _ := s.service.Get(s.ctx, "community-1")

	_, err := s.service.Leave(s.ctx, "community-1")
	s.Require().NoError(err)

	after, _ := s.service.Get(s.ctx, "community-1")
	s.Equal(before.MemberCount-1, after.MemberCount)
}

func (s *ServiceSuite) TestLeaveFailsWhenNotJoined() {
	_, err := s.service.Leave(s.ctx, "community-2")
	s.ErrorIs(err, model.ErrNotJoined)
}

func (s *ServiceSuite) TestJoinAfterLeaveSucceeds() {
	_, err := s.service.Leave(s.ctx, "community-1")
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, "community-1")
	s.NoError(err)
}
