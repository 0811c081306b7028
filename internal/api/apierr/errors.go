package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/betleague/sportsbet-hub/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeNoActiveSession    = "NO_ACTIVE_SESSION"
	CodeSessionBusy        = "SESSION_BUSY"
	CodeCommunityNotFound  = "COMMUNITY_NOT_FOUND"
	CodeAlreadyJoined      = "ALREADY_JOINED"
	CodeNotJoined          = "NOT_JOINED"
	CodeBetNotFound        = "BET_NOT_FOUND"
	CodeBetClosed          = "BET_CLOSED"
	CodeBetFull            = "BET_FULL"
	CodeInvalidOption      = "INVALID_OPTION"
	CodeAlreadyWagered     = "ALREADY_WAGERED"
	CodeInvalidBet         = "INVALID_BET"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Session errors
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid credentials"}}
	case errors.Is(err, model.ErrMissingFields):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingFields, "All fields are required"}}
	case errors.Is(err, model.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already registered"}}
	case errors.Is(err, model.ErrNoActiveSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeNoActiveSession, "No active session"}}
	case errors.Is(err, model.ErrSessionBusy):
		return &httpError{http.StatusConflict, APIError{CodeSessionBusy, "Another session operation is in flight"}}

	// Community errors
	case errors.Is(err, model.ErrCommunityNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCommunityNotFound, "Community not found"}}
	case errors.Is(err, model.ErrAlreadyJoined):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyJoined, "Already a member of this community"}}
	case errors.Is(err, model.ErrNotJoined):
		return &httpError{http.StatusConflict, APIError{CodeNotJoined, "Not a member of this community"}}

	// Bet errors
	case errors.Is(err, model.ErrBetNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBetNotFound, "Bet not found"}}
	case errors.Is(err, model.ErrBetClosed):
		return &httpError{http.StatusConflict, APIError{CodeBetClosed, "Bet is no longer open"}}
	case errors.Is(err, model.ErrBetFull):
		return &httpError{http.StatusConflict, APIError{CodeBetFull, "Bet has reached max participants"}}
	case errors.Is(err, model.ErrInvalidOption):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOption, "Invalid bet option"}}
	case errors.Is(err, model.ErrAlreadyWagered):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyWagered, "Already placed a wager on this bet"}}
	case errors.Is(err, model.ErrInvalidBet):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBet, "Invalid bet definition"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeNoActiveSession, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
