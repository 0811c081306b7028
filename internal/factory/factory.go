package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/betleague/sportsbet-hub/internal/dependencies/clock"
	"github.com/betleague/sportsbet-hub/internal/dependencies/random"
	"github.com/betleague/sportsbet-hub/internal/seed"
	"github.com/betleague/sportsbet-hub/internal/services/bet"
	"github.com/betleague/sportsbet-hub/internal/services/community"
	"github.com/betleague/sportsbet-hub/internal/services/leaderboard"
	"github.com/betleague/sportsbet-hub/internal/services/session"
	"github.com/betleague/sportsbet-hub/internal/storage"
	"github.com/betleague/sportsbet-hub/internal/storage/memory"
	redisstorage "github.com/betleague/sportsbet-hub/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SessionManager     *session.Manager
	CommunityService   *community.Service
	BetService         *bet.Service
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SessionConfig holds configuration for the session manager (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
	// SeedData applies the demo dataset (communities, bets, leaderboard)
	// to storage during construction
	SeedData bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default session config if not provided
	sessionCfg := cfg.SessionConfig
	if sessionCfg == (session.Config{}) {
		sessionCfg = session.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, sessionCfg, logger)

	if cfg.SeedData {
		if err := seed.Apply(context.Background(), store); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, sessionCfg session.Config, logger *slog.Logger) *App {
	sessionManager := session.New(store, clk, seed.DemoUser(), sessionCfg, logger)
	communityService := community.New(store, sessionManager, clk, community.DefaultConfig(), logger)
	betService := bet.New(store, sessionManager, clk, rnd, bet.DefaultConfig(), logger)
	leaderboardService := leaderboard.New(store, sessionManager)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		SessionManager:     sessionManager,
		CommunityService:   communityService,
		BetService:         betService,
		LeaderboardService: leaderboardService,
	}
}
