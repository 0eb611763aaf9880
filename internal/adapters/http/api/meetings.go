// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// MeetingsHandler handles meeting suggestion requests.
type MeetingsHandler struct {
	deps Dependencies
}

// NewMeetingsHandler creates a new meetings handler.
func NewMeetingsHandler(deps Dependencies) *MeetingsHandler {
	return &MeetingsHandler{deps: deps}
}

// HandleSuggest handles POST /api/meetings/suggest?user_id=&conference_id=
// requests.
func (h *MeetingsHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	conferenceID := r.URL.Query().Get("conference_id")
	if conferenceID == "" {
		conferenceID = defaultConferenceID
	}

	batch, err := h.deps.Suggest(r.Context(), userID, conferenceID)
	if err != nil {
		writeOperationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}
