package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/betleague/sportsbet-hub/internal/dependencies/clock"
	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

// Status is the lifecycle state of the session
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// Snapshot is the read-only view exposed to consumers. User is a copy;
// mutations must go through the Manager's operations.
type Snapshot struct {
	Status  Status
	User    *model.User
	Loading bool
	LastErr error
}

// Config holds configuration for the session manager
type Config struct {
	// SignInDelay is the simulated service latency applied to sign-in
	// and sign-up
	SignInDelay time.Duration
	// SignOutDelay is the simulated service latency applied to sign-out
	SignOutDelay time.Duration
	// SeedDemoUser auto-authenticates with the demo template when the
	// persisted slot is empty. Off means an empty slot resolves to an
	// anonymous session.
	SeedDemoUser bool
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SignInDelay:  time.Second,
		SignOutDelay: 500 * time.Millisecond,
		SeedDemoUser: true,
	}
}

// Update carries a partial user mutation. Nil fields are left
// untouched; set fields overwrite wholesale (shallow merge).
type Update struct {
	Name              *string
	Email             *string
	Avatar            *string
	Level             *int
	Points            *int
	Rank              *int
	WinRate           *int
	TotalBets         *int
	ActiveBets        *int
	Notifications     *int
	JoinedCommunities *[]model.CommunityID
	Badges            *[]model.Badge
	Stats             *model.Stats
}

// Manager owns the session state machine. It is the only component
// permitted to mutate session state; all transitions go through it.
// Mutating operations are serialized: a call made while another is in
// flight fails with model.ErrSessionBusy rather than racing.
type Manager struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config
	demo    model.User

	mu       sync.Mutex
	status   Status
	user     *model.User
	lastErr  error
	inFlight bool

	subMu sync.Mutex
	subs  map[chan struct{}]struct{}
}

// New creates a session manager. The demo template is the user record
// seeded on an empty store and used as the sign-in base.
func New(store storage.Storage, clk clock.Clock, demo model.User, cfg Config, logger *slog.Logger) *Manager {
	return &Manager{
		storage: store,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
		demo:    demo,
		status:  StatusUninitialized,
		subs:    make(map[chan struct{}]struct{}),
	}
}

// Snapshot returns the current consumer view of the session
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Status:  m.status,
		Loading: m.status == StatusLoading,
		LastErr: m.lastErr,
	}
	if m.user != nil {
		snap.User = cloneUser(m.user)
	}
	return snap
}

// CurrentUser returns a copy of the authenticated user, or
// model.ErrNoActiveSession
func (m *Manager) CurrentUser() (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusAuthenticated || m.user == nil {
		return nil, model.ErrNoActiveSession
	}
	return cloneUser(m.user), nil
}

// Subscribe registers for change notifications. Every settled state
// transition sends on the returned channel (coalesced when the
// receiver lags). The cancel func must be called to release the
// subscription.
func (m *Manager) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	m.subMu.Lock()
	m.subs[ch] = struct{}{}
	m.subMu.Unlock()

	cancel := func() {
		m.subMu.Lock()
		delete(m.subs, ch)
		m.subMu.Unlock()
	}
	return ch, cancel
}

func (m *Manager) notify() {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// begin claims the single mutation slot and moves the session to
// Loading, returning the status to restore on failure.
func (m *Manager) begin() (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inFlight {
		return "", model.ErrSessionBusy
	}
	prev := m.status
	m.inFlight = true
	m.status = StatusLoading
	m.lastErr = nil
	return prev, nil
}

// settle releases the mutation slot. On error the prior status is
// restored, except from Uninitialized where the only well-defined
// fallback is Anonymous. The session is never left in Loading.
func (m *Manager) settle(prev Status, user *model.User, status Status, err error) {
	m.mu.Lock()
	if err != nil {
		m.lastErr = err
		if prev == StatusUninitialized || prev == StatusLoading {
			m.status = StatusAnonymous
		} else {
			m.status = prev
		}
	} else {
		m.status = status
		m.user = user
	}
	m.inFlight = false
	m.mu.Unlock()

	m.notify()
}

// Init resolves the initial session from the persisted slot. Call once
// at startup; the session moves from Uninitialized through Loading to
// Authenticated or Anonymous.
func (m *Manager) Init(ctx context.Context) error {
	prev, err := m.begin()
	if err != nil {
		return err
	}
	m.notify()

	user, err := m.storage.GetSessionUser(ctx)
	switch {
	case err == nil:
		m.logger.Info("session restored", slog.String("user_id", string(user.ID)))
		m.settle(prev, user, StatusAuthenticated, nil)
		return nil

	case errors.Is(err, model.ErrSessionNotFound):
		if !m.cfg.SeedDemoUser {
			m.settle(prev, nil, StatusAnonymous, nil)
			return nil
		}
		demo := cloneUser(&m.demo)
		if err := m.storage.SaveSessionUser(ctx, demo); err != nil {
			m.settle(prev, nil, StatusAnonymous, err)
			return err
		}
		m.logger.Info("seeded demo session", slog.String("user_id", string(demo.ID)))
		m.settle(prev, demo, StatusAuthenticated, nil)
		return nil

	default:
		m.settle(prev, nil, StatusAnonymous, err)
		return err
	}
}

// SignIn authenticates with the given email and password. Both must be
// non-empty; beyond that there is no remote credential check unless a
// local credential record exists for the email, in which case the
// password is verified against its hash.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	prev, err := m.begin()
	if err != nil {
		return nil, err
	}
	m.notify()

	user, err := m.signIn(ctx, email, password)
	if err != nil {
		m.logger.Warn("sign in failed", slog.String("error", err.Error()))
		m.settle(prev, nil, "", err)
		return nil, err
	}

	m.logger.Info("signed in", slog.String("user_id", string(user.ID)))
	m.settle(prev, user, StatusAuthenticated, nil)
	return cloneUser(user), nil
}

func (m *Manager) signIn(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, model.ErrInvalidCredentials
	}

	if err := m.clock.Sleep(ctx, m.cfg.SignInDelay); err != nil {
		return nil, err
	}

	creds, err := m.storage.GetCredentialsByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
			return nil, model.ErrInvalidCredentials
		}
	case errors.Is(err, model.ErrCredentialsNotFound):
		// No record: mock acceptance, any non-empty pair passes
	default:
		return nil, err
	}

	user := cloneUser(&m.demo)
	user.Email = email

	if err := m.storage.SaveSessionUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignUp creates a fresh account. All three fields are required.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) (*model.User, error) {
	prev, err := m.begin()
	if err != nil {
		return nil, err
	}
	m.notify()

	user, err := m.signUp(ctx, name, email, password)
	if err != nil {
		m.logger.Warn("sign up failed", slog.String("error", err.Error()))
		m.settle(prev, nil, "", err)
		return nil, err
	}

	m.logger.Info("signed up", slog.String("user_id", string(user.ID)))
	m.settle(prev, user, StatusAuthenticated, nil)
	return cloneUser(user), nil
}

func (m *Manager) signUp(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, model.ErrMissingFields
	}

	if err := m.clock.Sleep(ctx, m.cfg.SignInDelay); err != nil {
		return nil, err
	}

	if _, err := m.storage.GetCredentialsByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailExists
	} else if !errors.Is(err, model.ErrCredentialsNotFound) {
		return nil, err
	}

	user := NewUser(name, email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	creds := &model.Credentials{
		UserID:       user.ID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    m.clock.Now(),
	}

	if err := m.storage.SaveCredentials(ctx, creds); err != nil {
		return nil, err
	}
	if err := m.storage.SaveSessionUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignOut clears the persisted slot and moves the session to
// Anonymous. Signing out while already anonymous is a no-op.
func (m *Manager) SignOut(ctx context.Context) error {
	prev, err := m.begin()
	if err != nil {
		return err
	}
	m.notify()

	if err := m.clock.Sleep(ctx, m.cfg.SignOutDelay); err != nil {
		m.settle(prev, nil, "", err)
		return err
	}

	if err := m.storage.ClearSessionUser(ctx); err != nil {
		m.settle(prev, nil, "", err)
		return err
	}

	m.logger.Info("signed out")
	m.settle(prev, nil, StatusAnonymous, nil)
	return nil
}

// UpdateUser merges the set fields of update into the current user and
// persists the result. Fails with model.ErrNoActiveSession when not
// authenticated.
func (m *Manager) UpdateUser(ctx context.Context, update Update) (*model.User, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return nil, model.ErrSessionBusy
	}
	if m.status != StatusAuthenticated || m.user == nil {
		m.mu.Unlock()
		return nil, model.ErrNoActiveSession
	}
	m.inFlight = true
	user := cloneUser(m.user)
	m.mu.Unlock()

	applyUpdate(user, update)

	if err := m.storage.SaveSessionUser(ctx, user); err != nil {
		m.mu.Lock()
		m.lastErr = err
		m.inFlight = false
		m.mu.Unlock()
		m.notify()
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.inFlight = false
	m.mu.Unlock()
	m.notify()

	return cloneUser(user), nil
}

func applyUpdate(user *model.User, update Update) {
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Level != nil {
		user.Level = *update.Level
	}
	if update.Points != nil {
		user.Points = *update.Points
	}
	if update.Rank != nil {
		user.Rank = *update.Rank
	}
	if update.WinRate != nil {
		user.WinRate = *update.WinRate
	}
	if update.TotalBets != nil {
		user.TotalBets = *update.TotalBets
	}
	if update.ActiveBets != nil {
		user.ActiveBets = *update.ActiveBets
	}
	if update.Notifications != nil {
		user.Notifications = *update.Notifications
	}
	if update.JoinedCommunities != nil {
		user.JoinedCommunities = append([]model.CommunityID(nil), (*update.JoinedCommunities)...)
	}
	if update.Badges != nil {
		user.Badges = append([]model.Badge(nil), (*update.Badges)...)
	}
	if update.Stats != nil {
		user.Stats = *update.Stats
	}
}

// NewUser builds a fresh account with starting progression: 1000
// points, unranked, a single starter badge, and all-zero stats apart
// from the starting points credited to the all-time window.
func NewUser(name, email string) *model.User {
	return &model.User{
		ID:      model.UserID("user-" + uuid.NewString()),
		Name:    name,
		Email:   email,
		Level:   1,
		Points:  1000,
		Rank:    model.UnrankedSentinel,
		WinRate: 0,

		JoinedCommunities: []model.CommunityID{},
		Badges: []model.Badge{
			{ID: "newbie", Label: "New Player", Color: model.BadgeBronze},
		},

		Stats: model.Stats{
			AllTime: model.AllTimeStats{
				WindowStats: model.WindowStats{PointsEarned: 1000},
			},
		},
	}
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.JoinedCommunities = append([]model.CommunityID(nil), u.JoinedCommunities...)
	c.Badges = append([]model.Badge(nil), u.Badges...)
	return &c
}
