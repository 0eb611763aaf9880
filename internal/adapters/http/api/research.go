// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// ResearchHandler handles conference research requests.
type ResearchHandler struct {
	deps Dependencies
}

// NewResearchHandler creates a new research handler.
func NewResearchHandler(deps Dependencies) *ResearchHandler {
	return &ResearchHandler{deps: deps}
}

type researchResponse struct {
	Success bool   `json:"success"`
	Results string `json:"results,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HandleResearch handles POST /api/conferences/research?query=&year=
// requests. Collaborator failures return a structured failure payload
// with HTTP 200 rather than a transport error.
func (h *ResearchHandler) HandleResearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	year := r.URL.Query().Get("year")

	results, err := h.deps.Research(r.Context(), query, year)
	if err != nil {
		writeJSON(w, http.StatusOK, researchResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, researchResponse{Success: true, Results: results})
}
