package community

import (
	"context"
	"log/slog"
	"time"

	"github.com/betleague/sportsbet-hub/internal/dependencies/clock"
	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/services/session"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

// Config holds configuration for the community service
type Config struct {
	// JoinDelay is the simulated service latency for join/leave
	JoinDelay time.Duration
}

// DefaultConfig returns default community configuration
func DefaultConfig() Config {
	return Config{
		JoinDelay: time.Second,
	}
}

// Service manages community membership. Membership lives on the
// session user's record; member counts live on the community.
type Service struct {
	storage  storage.Storage
	sessions *session.Manager
	clock    clock.Clock
	cfg      Config
	logger   *slog.Logger
}

// New creates a new community service
func New(store storage.Storage, sessions *session.Manager, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.JoinDelay == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		storage:  store,
		sessions: sessions,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
	}
}

// List returns all communities
func (s *Service) List(ctx context.Context) ([]*model.Community, error) {
	return s.storage.ListCommunities(ctx)
}

// Get returns a single community
func (s *Service) Get(ctx context.Context, id model.CommunityID) (*model.Community, error) {
	return s.storage.GetCommunity(ctx, id)
}

// Join adds the current user to a community. Fails with
// model.ErrAlreadyJoined for communities the user is already in.
func (s *Service) Join(ctx context.Context, id model.CommunityID) (*model.Community, error) {
	community, err := s.storage.GetCommunity(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user.HasJoined(id) {
		return nil, model.ErrAlreadyJoined
	}

	if err := s.clock.Sleep(ctx, s.cfg.JoinDelay); err != nil {
		return nil, err
	}

	joined := append(append([]model.CommunityID(nil), user.JoinedCommunities...), id)
	if _, err := s.sessions.UpdateUser(ctx, session.Update{JoinedCommunities: &joined}); err != nil {
		return nil, err
	}

	community.MemberCount++
	if err := s.storage.SaveCommunity(ctx, community); err != nil {
		return nil, err
	}

	s.logger.Info("joined community",
		slog.String("user_id", string(user.ID)),
		slog.String("community_id", string(id)))
	return community, nil
}

// Leave removes the current user from a community
func (s *Service) Leave(ctx context.Context, id model.CommunityID) (*model.Community, error) {
	community, err := s.storage.GetCommunity(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !user.HasJoined(id) {
		return nil, model.ErrNotJoined
	}

	if err := s.clock.Sleep(ctx, s.cfg.JoinDelay); err != nil {
		return nil, err
	}

	joined := make([]model.CommunityID, 0, len(user.JoinedCommunities)-1)
	for _, c := range user.JoinedCommunities {
		if c != id {
			joined = append(joined, c)
		}
	}
	if _, err := s.sessions.UpdateUser(ctx, session.Update{JoinedCommunities: &joined}); err != nil {
		return nil, err
	}

	if community.MemberCount > 0 {
		community.MemberCount--
	}
	if err := s.storage.SaveCommunity(ctx, community); err != nil {
		return nil, err
	}

	s.logger.Info("left community",
		slog.String("user_id", string(user.ID)),
		slog.String("community_id", string(id)))
	return community, nil
}
