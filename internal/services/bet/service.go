package bet

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/betleague/sportsbet-hub/internal/dependencies/clock"
	"github.com/betleague/sportsbet-hub/internal/dependencies/random"
	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/services/session"
	"github.com/betleague/sportsbet-hub/internal/services/stats"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

const (
	// OptionIDLength is the length of generated option id suffixes
	OptionIDLength = 8
	// OptionIDAlphabet is the characters used in option ids
	OptionIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// MinOptions is the minimum number of options a bet must offer
	MinOptions = 2
)

// Config holds configuration for the bet service
type Config struct {
	// CreateDelay is the simulated service latency for bet creation
	CreateDelay time.Duration
}

// DefaultConfig returns default bet configuration
func DefaultConfig() Config {
	return Config{
		CreateDelay: 2 * time.Second,
	}
}

// Draft is the input to Create: the server-side form of the bet
// creation wizard
type Draft struct {
	Title           string
	Description     string
	Category        model.Category
	EndDate         time.Time
	MaxParticipants int
	Options         []DraftOption
}

// DraftOption is one proposed option of a draft bet
type DraftOption struct {
	Label string
	Odds  string
}

// Service manages bets: creation, wagers, and outcome settlement
type Service struct {
	storage  storage.Storage
	sessions *session.Manager
	clock    clock.Clock
	random   random.Random
	cfg      Config
	logger   *slog.Logger
}

// New creates a new bet service
func New(store storage.Storage, sessions *session.Manager, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.CreateDelay == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		storage:  store,
		sessions: sessions,
		clock:    clk,
		random:   rnd,
		cfg:      cfg,
		logger:   logger,
	}
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Category model.Category
	Status   model.BetStatus
}

// List returns bets matching the filter
func (s *Service) List(ctx context.Context, filter Filter) ([]*model.Bet, error) {
	bets, err := s.storage.ListBets(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.Bet, 0, len(bets))
	for _, b := range bets {
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// Get returns a single bet
func (s *Service) Get(ctx context.Context, id model.BetID) (*model.Bet, error) {
	return s.storage.GetBet(ctx, id)
}

// Create validates a draft and publishes it as an active bet owned by
// the current user
func (s *Service) Create(ctx context.Context, draft Draft) (*model.Bet, error) {
	user, err := s.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}

	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	if err := s.clock.Sleep(ctx, s.cfg.CreateDelay); err != nil {
		return nil, err
	}

	options := make([]model.BetOption, len(draft.Options))
	for i, opt := range draft.Options {
		options[i] = model.BetOption{
			ID:    "opt-" + s.random.String(OptionIDLength, OptionIDAlphabet),
			Label: strings.TrimSpace(opt.Label),
			Odds:  opt.Odds,
		}
	}

	bet := &model.Bet{
		ID:          model.BetID("bet-" + uuid.NewString()),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Category:    draft.Category,
		Creator: model.BetCreator{
			ID:     user.ID,
			Name:   user.Name,
			Avatar: user.Avatar,
		},
		Status:          model.BetActive,
		EndDate:         draft.EndDate,
		MaxParticipants: draft.MaxParticipants,
		Options:         options,
	}

	if err := s.storage.SaveBet(ctx, bet); err != nil {
		return nil, err
	}

	s.logger.Info("bet created",
		slog.String("bet_id", string(bet.ID)),
		slog.String("creator_id", string(user.ID)))
	return bet, nil
}

func (s *Service) validateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return model.ErrInvalidBet
	}
	if strings.TrimSpace(draft.Description) == "" {
		return model.ErrInvalidBet
	}
	if !model.ValidCategory(draft.Category) {
		return model.ErrInvalidBet
	}
	if !draft.EndDate.After(s.clock.Now()) {
		return model.ErrInvalidBet
	}
	if draft.MaxParticipants != 0 && draft.MaxParticipants < MinOptions {
		return model.ErrInvalidBet
	}
	if len(draft.Options) < MinOptions {
		return model.ErrInvalidBet
	}
	for _, opt := range draft.Options {
		if strings.TrimSpace(opt.Label) == "" {
			return model.ErrInvalidBet
		}
	}
	return nil
}

// PlaceWager commits the current user to an option of an active bet,
// escrowing the wagered points
func (s *Service) PlaceWager(ctx context.Context, betID model.BetID, optionID string, amount int) (*model.Bet, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidBet
	}

	bet, err := s.storage.GetBet(ctx, betID)
	if err != nil {
		return nil, err
	}
	if bet.Status != model.BetActive {
		return nil, model.ErrBetClosed
	}
	if bet.MaxParticipants > 0 && bet.Participants >= bet.MaxParticipants {
		return nil, model.ErrBetFull
	}
	if bet.UserChoice != "" {
		return nil, model.ErrAlreadyWagered
	}
	option := bet.Option(optionID)
	if option == nil {
		return nil, model.ErrInvalidOption
	}

	user, err := s.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user.Points < amount {
		return nil, model.ErrInvalidBet
	}

	points := user.Points - amount
	totalBets := user.TotalBets + 1
	activeBets := user.ActiveBets + 1
	if _, err := s.sessions.UpdateUser(ctx, session.Update{
		Points:     &points,
		TotalBets:  &totalBets,
		ActiveBets: &activeBets,
	}); err != nil {
		return nil, err
	}

	bet.Participants++
	option.Participants++
	bet.PointsPool += amount
	bet.UserChoice = optionID

	if err := s.storage.SaveBet(ctx, bet); err != nil {
		return nil, err
	}

	s.logger.Info("wager placed",
		slog.String("bet_id", string(betID)),
		slog.String("option_id", optionID),
		slog.Int("amount", amount))
	return bet, nil
}

// RecordOutcome appends a settled (or still pending) outcome to the
// current user's history, applies the points delta, and rebuilds the
// user's stats block from the full history.
func (s *Service) RecordOutcome(ctx context.Context, outcome model.BetOutcome) (*model.User, error) {
	user, err := s.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}

	if outcome.Timestamp.IsZero() {
		outcome.Timestamp = s.clock.Now()
	}

	if err := s.storage.AppendOutcome(ctx, user.ID, outcome); err != nil {
		return nil, err
	}

	outcomes, err := s.storage.GetOutcomes(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	built := stats.Build(outcomes, s.clock.Now())

	update := session.Update{Stats: &built}
	points := user.Points + outcome.PointsDelta
	update.Points = &points
	winRate := built.AllTime.WinRate
	update.WinRate = &winRate
	if outcome.Result != model.OutcomePending && user.ActiveBets > 0 {
		activeBets := user.ActiveBets - 1
		update.ActiveBets = &activeBets
	}

	updated, err := s.sessions.UpdateUser(ctx, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("outcome recorded",
		slog.String("bet_id", string(outcome.BetID)),
		slog.String("result", string(outcome.Result)),
		slog.Int("points_delta", outcome.PointsDelta))
	return updated, nil
}
