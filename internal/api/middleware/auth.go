package middleware

import (
	"net/http"

	"github.com/betleague/sportsbet-hub/internal/api/apierr"
	"github.com/betleague/sportsbet-hub/internal/services/session"
)

// RequireSession gates handlers behind an authenticated session. The
// hub runs one logical session per deployment (the persisted slot), so
// there is no per-request token: the gate is the session's own state.
func RequireSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := sessions.CurrentUser(); err != nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
