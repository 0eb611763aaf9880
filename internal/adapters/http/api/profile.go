// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/medahead/conftarget/internal/domain/model"
)

// ProfileHandler handles user profile requests.
type ProfileHandler struct {
	deps Dependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps Dependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// profileRequest mirrors the POST /api/user/profile body.
type profileRequest struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	Role              string   `json:"role"`
	Goals             []string `json:"goals"`
	TargetConferences []string `json:"target_conferences"`
}

func (p profileRequest) validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return errors.New("missing name")
	case strings.TrimSpace(p.Email) == "":
		return errors.New("missing email")
	}
	return nil
}

type profileResponse struct {
	Success bool              `json:"success"`
	Profile model.UserProfile `json:"profile"`
}

// HandleSaveProfile handles POST /api/user/profile requests.
func (h *ProfileHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	saved, err := h.deps.SaveProfile(r.Context(), model.UserProfile{
		ID:                req.ID,
		Name:              req.Name,
		Email:             req.Email,
		Company:           req.Company,
		Industry:          req.Industry,
		Role:              req.Role,
		Goals:             req.Goals,
		TargetConferences: req.TargetConferences,
	})
	if err != nil {
		writeOperationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Success: true, Profile: saved})
}

// HandleGetProfile handles GET /api/user/profile/{id} requests.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/user/profile/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	profile, err := h.deps.Profile(r.Context(), id)
	if err != nil {
		writeOperationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
