package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/betleague/sportsbet-hub/internal/api/request"
	"github.com/betleague/sportsbet-hub/internal/api/response"
	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/services/bet"
)

// BetHandler handles bet endpoints
type BetHandler struct {
	bets *bet.Service
}

// NewBetHandler creates a new bet handler
func NewBetHandler(bets *bet.Service) *BetHandler {
	return &BetHandler{
		bets: bets,
	}
}

// List handles GET /api/v1/bets with optional category/status filters
func (h *BetHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bet.Filter{
		Category: model.Category(r.URL.Query().Get("category")),
		Status:   model.BetStatus(r.URL.Query().Get("status")),
	}

	bets, err := h.bets.List(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BetList{Bets: bets})
}

// Get handles GET /api/v1/bets/{id}
func (h *BetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.BetID(mux.Vars(r)["id"])

	b, err := h.bets.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/v1/bets
func (h *BetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	options := make([]bet.DraftOption, len(req.Options))
	for i, opt := range req.Options {
		options[i] = bet.DraftOption{Label: opt.Label, Odds: opt.Odds}
	}

	b, err := h.bets.Create(r.Context(), bet.Draft{
		Title:           req.Title,
		Description:     req.Description,
		Category:        model.Category(req.Category),
		EndDate:         req.EndDate,
		MaxParticipants: req.MaxParticipants,
		Options:         options,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, b)
}

// PlaceWager handles POST /api/v1/bets/{id}/wager
func (h *BetHandler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	id := model.BetID(mux.Vars(r)["id"])

	var req request.PlaceWagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.OptionID == "" {
		WriteError(w, NewInvalidRequestError("option_id is required"))
		return
	}

	b, err := h.bets.PlaceWager(r.Context(), id, req.OptionID, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, b)
}

// RecordOutcome handles POST /api/v1/outcomes
func (h *BetHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	var req request.RecordOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result := model.OutcomeResult(req.Result)
	switch result {
	case model.OutcomeWon, model.OutcomeLost, model.OutcomePending:
	default:
		WriteError(w, NewInvalidRequestError("result must be won, lost or pending"))
		return
	}

	user, err := h.bets.RecordOutcome(r.Context(), model.BetOutcome{
		BetID:       model.BetID(req.BetID),
		Result:      result,
		PointsDelta: req.PointsDelta,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserResponse{User: user})
}
