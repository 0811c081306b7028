package stats

import (
	"math"
	"time"

	"github.com/betleague/sportsbet-hub/internal/model"
)

// Window boundaries for the rolling stats blocks
const (
	WeekWindow  = 7 * 24 * time.Hour
	MonthWindow = 30 * 24 * time.Hour
)

// WindowStats derives aggregate betting performance from the outcomes
// with timestamp >= windowStart. Pending outcomes contribute to
// points but are not counted as placed bets until they settle.
func WindowStats(outcomes []model.BetOutcome, windowStart time.Time) model.WindowStats {
	var ws model.WindowStats
	for _, o := range outcomes {
		if o.Timestamp.Before(windowStart) {
			continue
		}
		ws.PointsEarned += o.PointsDelta
		if o.Result == model.OutcomePending {
			continue
		}
		ws.BetsPlaced++
		if o.Result == model.OutcomeWon {
			ws.BetsWon++
		}
	}
	ws.WinRate = WinRate(ws.BetsWon, ws.BetsPlaced)
	return ws
}

// WinRate returns round(100 * won / placed), or 0 when no bets have
// settled. Rounding is half-up: 2 of 3 -> 67.
func WinRate(won, placed int) int {
	if placed == 0 {
		return 0
	}
	return int(math.Round(100 * float64(won) / float64(placed)))
}

// Streaks computes the longest and current runs of consecutive wins in
// a chronological outcome sequence. Pending outcomes are treated as
// not-yet-occurred and skipped entirely; a loss breaks a run. The
// current streak is the run ending at the most recent settled outcome.
func Streaks(outcomes []model.BetOutcome) (longest, current int) {
	run := 0
	for _, o := range outcomes {
		switch o.Result {
		case model.OutcomeWon:
			run++
			if run > longest {
				longest = run
			}
		case model.OutcomeLost:
			run = 0
		case model.OutcomePending:
			// skipped
		}
	}
	current = run
	return longest, current
}

// Build assembles the full stats block for a user from their
// chronological outcome history.
func Build(outcomes []model.BetOutcome, now time.Time) model.Stats {
	allTime := WindowStats(outcomes, time.Time{})
	longest, current := Streaks(outcomes)

	return model.Stats{
		ThisWeek:  WindowStats(outcomes, now.Add(-WeekWindow)),
		ThisMonth: WindowStats(outcomes, now.Add(-MonthWindow)),
		AllTime: model.AllTimeStats{
			WindowStats:   allTime,
			LongestStreak: longest,
			CurrentStreak: current,
		},
	}
}
