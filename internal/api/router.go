package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/betleague/sportsbet-hub/internal/api/handler"
	"github.com/betleague/sportsbet-hub/internal/api/middleware"
	"github.com/betleague/sportsbet-hub/internal/services/bet"
	"github.com/betleague/sportsbet-hub/internal/services/community"
	"github.com/betleague/sportsbet-hub/internal/services/leaderboard"
	"github.com/betleague/sportsbet-hub/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	SessionManager     *session.Manager
	CommunityService   *community.Service
	BetService         *bet.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionManager)
	communityHandler := handler.NewCommunityHandler(cfg.CommunityService)
	betHandler := handler.NewBetHandler(cfg.BetService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	// Create middleware
	requireSession := middleware.RequireSession(cfg.SessionManager)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes (no session required to establish one)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session/signin", sessionHandler.SignIn).Methods(http.MethodPost)
	api.HandleFunc("/session/signup", sessionHandler.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/session", sessionHandler.SignOut).Methods(http.MethodDelete)
	api.HandleFunc("/session/user", sessionHandler.UpdateUser).Methods(http.MethodPatch)

	// Community routes (reads open, membership changes need a session)
	api.HandleFunc("/communities", communityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/communities/{id}", communityHandler.Get).Methods(http.MethodGet)

	membership := api.PathPrefix("/communities").Subrouter()
	membership.Use(requireSession)
	membership.HandleFunc("/{id}/join", communityHandler.Join).Methods(http.MethodPost)
	membership.HandleFunc("/{id}/leave", communityHandler.Leave).Methods(http.MethodPost)

	// Bet routes
	api.HandleFunc("/bets", betHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/bets/{id}", betHandler.Get).Methods(http.MethodGet)

	wagering := api.NewRoute().Subrouter()
	wagering.Use(requireSession)
	wagering.HandleFunc("/bets", betHandler.Create).Methods(http.MethodPost)
	wagering.HandleFunc("/bets/{id}/wager", betHandler.PlaceWager).Methods(http.MethodPost)
	wagering.HandleFunc("/outcomes", betHandler.RecordOutcome).Methods(http.MethodPost)

	// Leaderboard route
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
