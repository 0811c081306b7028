package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/betleague/sportsbet-hub/internal/api/response"
	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/services/community"
)

// CommunityHandler handles community endpoints
type CommunityHandler struct {
	communities *community.Service
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communities *community.Service) *CommunityHandler {
	return &CommunityHandler{
		communities: communities,
	}
}

// List handles GET /api/v1/communities
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	communities, err := h.communities.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CommunityList{Communities: communities})
}

// Get handles GET /api/v1/communities/{id}
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CommunityID(mux.Vars(r)["id"])

	c, err := h.communities.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, c)
}

// Join handles POST /api/v1/communities/{id}/join
func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	id := model.CommunityID(mux.Vars(r)["id"])

	c, err := h.communities.Join(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, c)
}

// Leave handles POST /api/v1/communities/{id}/leave
func (h *CommunityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id := model.CommunityID(mux.Vars(r)["id"])

	c, err := h.communities.Leave(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, c)
}
