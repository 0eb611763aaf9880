// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/medahead/conftarget/internal/adapters/ingest"
)

// maxUploadBytes bounds multipart memory use for contact uploads.
const maxUploadBytes = 10 << 20

// ContactsHandler handles contact upload and analysis requests.
type ContactsHandler struct {
	deps Dependencies
}

// NewContactsHandler creates a new contacts handler.
func NewContactsHandler(deps Dependencies) *ContactsHandler {
	return &ContactsHandler{deps: deps}
}

type uploadResponse struct {
	Success          bool   `json:"success"`
	ContactsUploaded int    `json:"contacts_uploaded"`
	Message          string `json:"message"`
}

// HandleUpload handles POST /api/contacts/upload requests carrying a
// multipart CSV file and a user_id form value. Only files with a .csv
// extension are accepted.
func (h *ContactsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		writeError(w, http.StatusBadRequest, "validation_error", ErrInvalidFile)
		return
	}

	contacts, err := ingest.ParseContacts(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err)
		return
	}
	count, err := h.deps.ImportContacts(r.Context(), contacts)
	if err != nil {
		writeOperationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{
		Success:          true,
		ContactsUploaded: count,
		Message:          fmt.Sprintf("Successfully uploaded %d contacts", count),
	})
}

// HandleAnalyze handles POST /api/contacts/analyze?user_id=&conference_id=
// requests.
func (h *ContactsHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.deps.Analyze(r.Context(), userID, conferenceID)
	if err != nil {
		writeOperationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
