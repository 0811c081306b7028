package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session slot operations

func (s *Storage) SaveSessionUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSessionUser(ctx context.Context) (*model.User, error) {
	data, err := s.client.Get(ctx, sessionKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		// A slot that no longer parses is unrecoverable; discard it
		// so the next load starts clean.
		_ = s.client.Del(ctx, sessionKey()).Err()
		return nil, model.ErrSessionNotFound
	}
	return &user, nil
}

func (s *Storage) ClearSessionUser(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey()).Err()
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, credentialsKey(creds.Email), data, 0).Err()
}

func (s *Storage) GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error) {
	data, err := s.client.Get(ctx, credentialsKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialsNotFound
		}
		return nil, err
	}

	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Community operations

func (s *Storage) SaveCommunity(ctx context.Context, community *model.Community) error {
	data, err := json.Marshal(community)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, communityKey(community.ID), data, 0)
	pipe.SAdd(ctx, communityIndexKey(), communityKey(community.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCommunity(ctx context.Context, id model.CommunityID) (*model.Community, error) {
	data, err := s.client.Get(ctx, communityKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCommunityNotFound
		}
		return nil, err
	}

	var community model.Community
	if err := json.Unmarshal(data, &community); err != nil {
		return nil, err
	}
	return &community, nil
}

func (s *Storage) ListCommunities(ctx context.Context) ([]*model.Community, error) {
	communities := []*model.Community{}
	err := s.listInto(ctx, communityIndexKey(), func(data []byte) error {
		var community model.Community
		if err := json.Unmarshal(data, &community); err != nil {
			return err
		}
		communities = append(communities, &community)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(communities, func(i, j int) bool {
		return communities[i].ID < communities[j].ID
	})
	return communities, nil
}

// Bet operations

func (s *Storage) SaveBet(ctx context.Context, bet *model.Bet) error {
	data, err := json.Marshal(bet)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, betKey(bet.ID), data, 0)
	pipe.SAdd(ctx, betIndexKey(), betKey(bet.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetBet(ctx context.Context, id model.BetID) (*model.Bet, error) {
	data, err := s.client.Get(ctx, betKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBetNotFound
		}
		return nil, err
	}

	var bet model.Bet
	if err := json.Unmarshal(data, &bet); err != nil {
		return nil, err
	}
	return &bet, nil
}

func (s *Storage) ListBets(ctx context.Context) ([]*model.Bet, error) {
	bets := []*model.Bet{}
	err := s.listInto(ctx, betIndexKey(), func(data []byte) error {
		var bet model.Bet
		if err := json.Unmarshal(data, &bet); err != nil {
			return err
		}
		bets = append(bets, &bet)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(bets, func(i, j int) bool {
		return bets[i].ID < bets[j].ID
	})
	return bets, nil
}

// listInto fetches every entity named by an index set with MGET and
// decodes each value. Expired or invalid entries are skipped.
func (s *Storage) listInto(ctx context.Context, indexKey string, decode func([]byte) error) error {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return err
	}

	for _, val := range values {
		if val == nil {
			continue
		}
		if err := decode([]byte(val.(string))); err != nil {
			continue
		}
	}
	return nil
}

// Outcome history operations

func (s *Storage) AppendOutcome(ctx context.Context, userID model.UserID, outcome model.BetOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, outcomesKey(userID), data).Err()
}

func (s *Storage) GetOutcomes(ctx context.Context, userID model.UserID) ([]model.BetOutcome, error) {
	values, err := s.client.LRange(ctx, outcomesKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	outcomes := make([]model.BetOutcome, 0, len(values))
	for _, val := range values {
		var outcome model.BetOutcome
		if err := json.Unmarshal([]byte(val), &outcome); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, leaderboardKey(), data, 0).Err()
}

func (s *Storage) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, leaderboardKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.LeaderboardEntry{}, nil
		}
		return nil, err
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
