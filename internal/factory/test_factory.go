package factory

import (
	"time"

	"github.com/betleague/sportsbet-hub/internal/dependencies/mocks"
	"github.com/betleague/sportsbet-hub/internal/services/session"
	"github.com/betleague/sportsbet-hub/internal/storage/memory"
	"github.com/betleague/sportsbet-hub/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked
// dependencies and in-memory storage. Simulated latency is real
// configuration but costs nothing: the mock clock advances instead of
// sleeping.
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(session.DefaultConfig())
}

// NewTestAppWithConfig creates a test App with a specific session config
func NewTestAppWithConfig(sessionCfg session.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, sessionCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
