package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds server configuration, populated from the environment
type Config struct {
	Host string `env:"HUB_HOST" envDefault:""`
	Port int    `env:"HUB_PORT" envDefault:"8080"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// Simulated service latency for session operations
	SignInDelay  time.Duration `env:"SIGNIN_DELAY" envDefault:"1s"`
	SignOutDelay time.Duration `env:"SIGNOUT_DELAY" envDefault:"500ms"`

	// DemoAutoLogin seeds the demo user when the persisted session
	// slot is empty
	DemoAutoLogin bool `env:"DEMO_AUTO_LOGIN" envDefault:"true"`

	// SeedData loads the demo communities, bets and leaderboard at
	// startup
	SeedData bool `env:"SEED_DATA" envDefault:"true"`
}

// Load reads configuration from a .env file (if present) and the
// process environment
func Load() (*Config, error) {
	// .env is optional; the environment wins when both are set
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
