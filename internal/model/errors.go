package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("no persisted session")
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionBusy     = errors.New("session busy")

	// Credential errors
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrMissingFields       = errors.New("all fields are required")
	ErrEmailExists         = errors.New("email already registered")

	// Community errors
	ErrCommunityNotFound = errors.New("community not found")
	ErrAlreadyJoined     = errors.New("already a member of community")
	ErrNotJoined         = errors.New("not a member of community")

	// Bet errors
	ErrBetNotFound    = errors.New("bet not found")
	ErrBetClosed      = errors.New("bet is no longer open")
	ErrBetFull        = errors.New("bet has reached max participants")
	ErrInvalidOption  = errors.New("invalid bet option")
	ErrAlreadyWagered = errors.New("already placed a wager on this bet")
	ErrInvalidBet     = errors.New("invalid bet definition")
)
