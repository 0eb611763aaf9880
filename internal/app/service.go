// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/medahead/conftarget/internal/adapters/ai"
	"github.com/medahead/conftarget/internal/adapters/repository"
	"github.com/medahead/conftarget/internal/domain/conference"
	"github.com/medahead/conftarget/internal/domain/model"
	"github.com/medahead/conftarget/internal/domain/scoring"
	"github.com/medahead/conftarget/internal/domain/types"
	"github.com/medahead/conftarget/pkg/logger"
	"github.com/medahead/conftarget/pkg/metrics"
)

// Default selection limits.
const (
	defaultAnalyzeResultCap     = 20
	defaultSuggestHighLimit     = 10
	defaultSuggestFallbackLimit = 5
)

// Personalization fallbacks used when the profile is absent.
const (
	fallbackCompany = "Your Company"
	fallbackGoal    = "networking"
)

// timeSlots is the fixed ordered set of meeting slot labels. Slots are
// assigned by position modulo the list length; there is no global slot
// reservation across invocations.
var timeSlots = []string{
	"Day 1, 10:00 AM",
	"Day 1, 2:00 PM",
	"Day 2, 11:00 AM",
	"Day 2, 3:00 PM",
	"Day 3, 9:00 AM",
}

// Service implements the API dependencies for the targeting system.
// It holds no request state: every operation is stateless given the
// current store contents.
type Service struct {
	store      repository.Store
	scorer     scoring.Scorer
	researcher ai.Researcher

	analyzeResultCap     int
	suggestHighLimit     int
	suggestFallbackLimit int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the persistence backend.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithScorer sets the contact scorer.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithResearcher sets the optional research collaborator.
func WithResearcher(r ai.Researcher) Option {
	return func(s *Service) {
		s.researcher = r
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAnalyzeResultCap caps the analyzed contacts returned to callers.
func WithAnalyzeResultCap(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.analyzeResultCap = n
		}
	}
}

// WithSuggestionLimits sets the high-priority and fallback selection caps.
func WithSuggestionLimits(high, fallback int) Option {
	return func(s *Service) {
		if high > 0 {
			s.suggestHighLimit = high
		}
		if fallback > 0 {
			s.suggestFallbackLimit = fallback
		}
	}
}

// New constructs a Service with default configuration: an in-memory
// store, the rule scorer, and no research collaborator.
func New(opts ...Option) *Service {
	s := &Service{
		store:                repository.NewMemoryStore(),
		scorer:               scoring.NewRuleScorer(),
		analyzeResultCap:     defaultAnalyzeResultCap,
		suggestHighLimit:     defaultSuggestHighLimit,
		suggestFallbackLimit: defaultSuggestFallbackLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}

// SaveProfile upserts a profile, assigning an identifier when absent,
// and returns the saved record.
func (s *Service) SaveProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error) {
	p.EnsureID()
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return model.UserProfile{}, err
	}
	s.logger.Info(ctx, "profile saved", logger.String("userID", p.ID))
	return p, nil
}

// Profile returns the profile for id, or the store's not-found error.
func (s *Service) Profile(ctx context.Context, id string) (model.UserProfile, error) {
	return s.store.Profile(ctx, id)
}

// Conferences returns the static catalogue, annotated with relevance
// scores when industry is non-empty.
func (s *Service) Conferences(_ context.Context, industry string) []conference.Conference {
	return conference.Annotate(industry)
}

// Research delegates to the LLM collaborator. A missing collaborator
// surfaces as ai.ErrUnavailable; callers degrade to a structured
// failure payload rather than a transport error.
func (s *Service) Research(ctx context.Context, query, year string) (string, error) {
	if s.researcher == nil {
		return "", ai.ErrUnavailable
	}
	return s.researcher.Research(ctx, query, year)
}

// ImportContacts bulk-inserts uploaded contacts and returns the count.
func (s *Service) ImportContacts(ctx context.Context, contacts []model.Contact) (int, error) {
	if len(contacts) == 0 {
		return 0, nil
	}
	if err := s.store.InsertContacts(ctx, contacts); err != nil {
		return 0, err
	}
	metrics.RecordContactsUploaded(len(contacts))
	s.logger.Info(ctx, "contacts imported", logger.Int("count", len(contacts)))
	return len(contacts), nil
}

// Analyze runs the scoring engine over the conference-filtered contact
// set. The referenced profile is load-bearing: a missing profile fails
// with the store's not-found error before any contact is written. All
// analyzed contacts are persisted; only the top slice is returned,
// sorted by score descending with equal scores keeping their original
// relative order.
func (s *Service) Analyze(ctx context.Context, userID, conferenceID string) (types.AnalysisReport, error) {
	if _, err := s.store.Profile(ctx, userID); err != nil {
		return types.AnalysisReport{}, err
	}

	filter := repository.ContactFilter{Conference: conference.FilterValue(conferenceID)}
	contacts, err := s.store.Contacts(ctx, filter)
	if err != nil {
		return types.AnalysisReport{}, err
	}
	if len(contacts) == 0 {
		return types.AnalysisReport{Message: "No contacts to analyze"}, nil
	}

	for i := range contacts {
		res := s.scorer.Score(contacts[i])
		contacts[i].Score = res.Score
		contacts[i].Priority = res.Priority
		contacts[i].Notes = res.Notes
		if err := s.store.ReplaceContact(ctx, contacts[i]); err != nil {
			// Already-written records remain; partial effect is the
			// accepted policy for aborted batches.
			return types.AnalysisReport{}, err
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Score > contacts[j].Score
	})

	report := types.AnalysisReport{TotalAnalyzed: len(contacts)}
	for _, c := range contacts {
		switch c.Priority {
		case model.PriorityHigh:
			report.HighPriority++
		case model.PriorityLow:
			report.LowPriority++
		default:
			report.MediumPriority++
		}
	}
	top := contacts
	if len(top) > s.analyzeResultCap {
		top = top[:s.analyzeResultCap]
	}
	report.AnalyzedContacts = top

	metrics.RecordAnalysisRun()
	metrics.RecordContactsScored(len(contacts))
	s.logger.Info(ctx, "contacts analyzed",
		logger.Int("total", len(contacts)),
		logger.Int("highPriority", report.HighPriority),
		logger.String("conferenceID", conferenceID),
	)
	return report, nil
}

// Suggest composes meeting recommendations for top contacts. High
// priority contacts are preferred; when none match, any contacts under
// the conference filter are used. A missing profile is tolerated with
// neutral personalization defaults, unlike Analyze.
func (s *Service) Suggest(ctx context.Context, userID, conferenceID string) (types.SuggestionBatch, error) {
	confValue := conference.FilterValue(conferenceID)

	contacts, err := s.store.Contacts(ctx, repository.ContactFilter{
		Conference: confValue,
		Priority:   model.PriorityHigh,
		Limit:      s.suggestHighLimit,
	})
	if err != nil {
		return types.SuggestionBatch{}, err
	}
	if len(contacts) == 0 {
		contacts, err = s.store.Contacts(ctx, repository.ContactFilter{
			Conference: confValue,
			Limit:      s.suggestFallbackLimit,
		})
		if err != nil {
			return types.SuggestionBatch{}, err
		}
	}

	company := fallbackCompany
	goal := fallbackGoal
	if profile, err := s.store.Profile(ctx, userID); err == nil {
		if strings.TrimSpace(profile.Company) != "" {
			company = profile.Company
		}
		goal = profile.PrimaryGoal(fallbackGoal)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return types.SuggestionBatch{}, err
	}

	recs := make([]model.MeetingRecommendation, 0, len(contacts))
	for i, c := range contacts {
		recs = append(recs, model.NewMeetingRecommendation(
			c,
			timeSlots[i%len(timeSlots)],
			composeReason(c),
			composeMessage(c, company, goal, conferenceID),
		))
	}
	if err := s.store.AppendMeetings(ctx, recs); err != nil {
		return types.SuggestionBatch{}, err
	}

	metrics.RecordMeetingSuggestions(len(recs))
	s.logger.Info(ctx, "meeting suggestions generated",
		logger.Int("count", len(recs)),
		logger.String("conferenceID", conferenceID),
	)
	return types.SuggestionBatch{MeetingSuggestions: recs, TotalSuggestions: len(recs)}, nil
}

// Stats derives dashboard counts from current store state.
func (s *Service) Stats(ctx context.Context, _ string) (types.DashboardStats, error) {
	total, err := s.store.CountContacts(ctx, repository.ContactFilter{})
	if err != nil {
		return types.DashboardStats{}, err
	}
	high, err := s.store.CountContacts(ctx, repository.ContactFilter{Priority: model.PriorityHigh})
	if err != nil {
		return types.DashboardStats{}, err
	}
	meetings, err := s.store.CountMeetings(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}
	return types.DashboardStats{
		TotalContacts:        total,
		HighPriorityContacts: high,
		MeetingSuggestions:   meetings,
		ROIProjection:        fmt.Sprintf("%d%% increase in qualified leads", meetings*15),
	}, nil
}

func composeMessage(c model.Contact, company, goal, conferenceID string) string {
	name := c.Name
	if strings.TrimSpace(name) == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s, I'm with %s and noticed your work at %s. I'd love to discuss %s. Available for coffee at %s?",
		name, company, c.Company, goal, strings.ToUpper(conferenceID),
	)
}

func composeReason(c model.Contact) string {
	contactCompany := c.Company
	if strings.TrimSpace(contactCompany) == "" {
		contactCompany = "this company"
	}
	industry := c.Industry
	if strings.TrimSpace(industry) == "" {
		industry = "healthcare"
	}
	return fmt.Sprintf("Strategic partnership opportunity with %s in %s", contactCompany, industry)
}
