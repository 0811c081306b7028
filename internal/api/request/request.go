package request

import "time"

// SignInRequest is the request body for signing in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the request body for signing up
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the request body for a partial user update.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	Name          *string `json:"name,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
	Points        *int    `json:"points,omitempty"`
	Notifications *int    `json:"notifications,omitempty"`
}

// CreateBetRequest is the request body for creating a bet
type CreateBetRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Category        string            `json:"category"`
	EndDate         time.Time         `json:"end_date"`
	MaxParticipants int               `json:"max_participants,omitempty"`
	Options         []CreateBetOption `json:"options"`
}

// CreateBetOption is one option of a bet being created
type CreateBetOption struct {
	Label string `json:"label"`
	Odds  string `json:"odds,omitempty"`
}

// PlaceWagerRequest is the request body for placing a wager
type PlaceWagerRequest struct {
	OptionID string `json:"option_id"`
	Amount   int    `json:"amount"`
}

// RecordOutcomeRequest is the request body for recording a bet outcome
type RecordOutcomeRequest struct {
	BetID       string    `json:"bet_id"`
	Result      string    `json:"result"`
	PointsDelta int       `json:"points_delta"`
	Timestamp   time.Time `json:"timestamp,omitempty"`
}
