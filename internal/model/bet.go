package model

import "time"

// BetID uniquely identifies a bet
type BetID string

// Category is the sport a community or bet belongs to
type Category string

const (
	CategoryNBA     Category = "nba"
	CategoryNFL     Category = "nfl"
	CategoryMLB     Category = "mlb"
	CategoryNHL     Category = "nhl"
	CategorySoccer  Category = "soccer"
	CategoryGeneral Category = "general"
)

// ValidCategory reports whether c is a known category
func ValidCategory(c Category) bool {
	switch c {
	case CategoryNBA, CategoryNFL, CategoryMLB, CategoryNHL, CategorySoccer, CategoryGeneral:
		return true
	}
	return false
}

// BetStatus is the lifecycle state of a bet
type BetStatus string

const (
	BetActive  BetStatus = "active"
	BetClosed  BetStatus = "closed"
	BetSettled BetStatus = "settled"
)

// BetOption is one selectable outcome of a bet
type BetOption struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Participants int    `json:"participants"`
	Odds         string `json:"odds,omitempty"`
}

// BetCreator is the denormalized creator summary carried on a bet
type BetCreator struct {
	ID     UserID `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Bet is a prediction market with multiple options
type Bet struct {
	ID          BetID      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Creator     BetCreator `json:"creator"`
	Status      BetStatus  `json:"status"`
	EndDate     time.Time  `json:"end_date"`

	Participants    int         `json:"participants"`
	MaxParticipants int         `json:"max_participants,omitempty"`
	PointsPool      int         `json:"points_pool"`
	Options         []BetOption `json:"options"`

	// UserChoice is the option the current user picked, if any
	UserChoice string `json:"user_choice,omitempty"`
}

// Option returns the option with the given id, or nil
func (b *Bet) Option(id string) *BetOption {
	for i := range b.Options {
		if b.Options[i].ID == id {
			return &b.Options[i]
		}
	}
	return nil
}

// OutcomeResult is the settled result of a user's wager
type OutcomeResult string

const (
	OutcomeWon     OutcomeResult = "won"
	OutcomeLost    OutcomeResult = "lost"
	OutcomePending OutcomeResult = "pending"
)

// BetOutcome is one entry in a user's chronological bet history.
// PointsDelta is signed: positive for winnings, negative for losses.
type BetOutcome struct {
	BetID       BetID         `json:"bet_id"`
	Result      OutcomeResult `json:"result"`
	PointsDelta int           `json:"points_delta"`
	Timestamp   time.Time     `json:"timestamp"`
}
