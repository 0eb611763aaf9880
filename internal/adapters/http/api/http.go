// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medahead/conftarget/internal/adapters/repository"
	"github.com/medahead/conftarget/internal/domain/conference"
	"github.com/medahead/conftarget/internal/domain/model"
	"github.com/medahead/conftarget/internal/domain/types"
)

// defaultConferenceID scopes analyze/suggest calls when the caller
// omits conference_id.
const defaultConferenceID = "himss-2025"

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	SaveProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error)
	Profile(ctx context.Context, id string) (model.UserProfile, error)
	Conferences(ctx context.Context, industry string) []conference.Conference
	Research(ctx context.Context, query, year string) (string, error)
	ImportContacts(ctx context.Context, contacts []model.Contact) (int, error)
	Analyze(ctx context.Context, userID, conferenceID string) (types.AnalysisReport, error)
	Suggest(ctx context.Context, userID, conferenceID string) (types.SuggestionBatch, error)
	Stats(ctx context.Context, userID string) (types.DashboardStats, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	profileHandler     *ProfileHandler
	conferencesHandler *ConferencesHandler
	researchHandler    *ResearchHandler
	contactsHandler    *ContactsHandler
	meetingsHandler    *MeetingsHandler
	dashboardHandler   *DashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		profileHandler:     NewProfileHandler(deps),
		conferencesHandler: NewConferencesHandler(deps),
		researchHandler:    NewResearchHandler(deps),
		contactsHandler:    NewContactsHandler(deps),
		meetingsHandler:    NewMeetingsHandler(deps),
		dashboardHandler:   NewDashboardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/api/health", withMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/api/user/profile", withMiddleware(s.profileHandler.HandleSaveProfile, "save_profile"))
	mux.HandleFunc("/api/user/profile/", withMiddleware(s.profileHandler.HandleGetProfile, "get_profile"))
	mux.HandleFunc("/api/conferences", withMiddleware(s.conferencesHandler.HandleGetConferences, "conferences"))
	mux.HandleFunc("/api/conferences/research", withMiddleware(s.researchHandler.HandleResearch, "research"))
	mux.HandleFunc("/api/contacts/upload", withMiddleware(s.contactsHandler.HandleUpload, "upload_contacts"))
	mux.HandleFunc("/api/contacts/analyze", withMiddleware(s.contactsHandler.HandleAnalyze, "analyze_contacts"))
	mux.HandleFunc("/api/meetings/suggest", withMiddleware(s.meetingsHandler.HandleSuggest, "suggest_meetings"))
	mux.HandleFunc("/api/dashboard/stats", withMiddleware(s.dashboardHandler.HandleStats, "dashboard_stats"))
}

func withMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return CORSMiddleware(MetricsMiddleware(next, endpoint))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeOperationError translates service errors to transport status
// codes: repository not-found becomes 404, everything else a 500.
func writeOperationError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "operation_error", err)
}
