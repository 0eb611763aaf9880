// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/medahead/conftarget/internal/domain/conference"
)

// ConferencesHandler handles conference listing requests.
type ConferencesHandler struct {
	deps Dependencies
}

// NewConferencesHandler creates a new conferences handler.
func NewConferencesHandler(deps Dependencies) *ConferencesHandler {
	return &ConferencesHandler{deps: deps}
}

type conferencesResponse struct {
	Conferences []conference.Conference `json:"conferences"`
}

// HandleGetConferences handles GET /api/conferences?industry= requests.
// The relevance annotation comes from the fixed category rules only.
func (h *ConferencesHandler) HandleGetConferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	industry := r.URL.Query().Get("industry")
	confs := h.deps.Conferences(r.Context(), industry)
	writeJSON(w, http.StatusOK, conferencesResponse{Conferences: confs})
}
