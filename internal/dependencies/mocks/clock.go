package mocks

import (
	"context"
	"time"

	"github.com/betleague/sportsbet-hub/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// Sleep advances the clock instead of blocking, so tests exercising
// simulated latency run instantly.
type MockClock struct {
	CurrentTime time.Time

	// SleepCalls records the durations passed to Sleep
	SleepCalls []time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Sleep advances the mocked clock by d without blocking
func (c *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.SleepCalls = append(c.SleepCalls, d)
	c.CurrentTime = c.CurrentTime.Add(d)
	return nil
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
