// Package scoring defines the contract for classifying contacts into
// priority tiers.
package scoring

import (
	"fmt"
	"strings"

	"github.com/medahead/conftarget/internal/domain/model"
)

// Default scoring configuration constants.
const (
	baseScore         = 60
	executiveBonus    = 25
	organizationBonus = 20
	industryBonus     = 15
	trendBonus        = 10
	maxScoreValue     = 100
)

// Keyword sets driving the rule-based classification. Matching is
// case-insensitive substring containment.
var (
	defaultExecutiveTitles = []string{"ceo", "cto", "cmo", "vp", "director", "chief", "president"}
	defaultOrganizations   = []string{"hospital", "health system", "medical center", "clinic", "healthcare network"}
	defaultIndustries      = []string{"healthcare", "medical", "pharma", "biotech", "digital health", "healthtech"}
	defaultTrendTitles     = []string{"digital", "ai", "innovation", "transformation", "value", "analytics"}
)

// Result carries the outcome of scoring one contact.
type Result struct {
	Score    int
	Priority model.Priority
	Notes    string
}

// Scorer maps a contact to a score, tier and generated notes. The
// implementation is deterministic; no external calls are involved.
type Scorer interface {
	Score(c model.Contact) Result
}

// Option applies a configuration option to the RuleScorer.
type Option func(*RuleScorer)

// WithExecutiveTitles overrides the executive-title keyword set.
func WithExecutiveTitles(titles []string) Option {
	return func(s *RuleScorer) {
		if len(titles) > 0 {
			s.executiveTitles = titles
		}
	}
}

// WithOrganizationKeywords overrides the organization keyword set.
func WithOrganizationKeywords(keywords []string) Option {
	return func(s *RuleScorer) {
		if len(keywords) > 0 {
			s.organizations = keywords
		}
	}
}

// RuleScorer implements Scorer with fixed keyword-driven heuristics.
type RuleScorer struct {
	executiveTitles []string
	organizations   []string
	industries      []string
	trendTitles     []string
}

// NewRuleScorer creates a scorer with the default keyword sets.
func NewRuleScorer(opts ...Option) *RuleScorer {
	s := &RuleScorer{
		executiveTitles: defaultExecutiveTitles,
		organizations:   defaultOrganizations,
		industries:      defaultIndustries,
		trendTitles:     defaultTrendTitles,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score applies the rule set: base 60, +25 for an executive title
// (which alone promotes the tier to high), +20 for a healthcare
// organization, +15 for a relevant industry, +10 for trend-aligned
// title keywords, clamped to [0,100]. The tier is never downgraded to
// low by this logic.
func (s *RuleScorer) Score(c model.Contact) Result {
	score := baseScore
	priority := model.PriorityMedium

	if containsAny(c.Title, s.executiveTitles) {
		score += executiveBonus
		priority = model.PriorityHigh
	}
	if containsAny(c.Company, s.organizations) {
		score += organizationBonus
	}
	if containsAny(c.Industry, s.industries) {
		score += industryBonus
	}
	if containsAny(c.Title, s.trendTitles) {
		score += trendBonus
	}
	if score > maxScoreValue {
		score = maxScoreValue
	}

	title := c.Title
	if strings.TrimSpace(title) == "" {
		title = "role"
	}

	return Result{
		Score:    score,
		Priority: priority,
		Notes:    fmt.Sprintf("Scored based on %s and industry relevance", title),
	}
}

func containsAny(field string, keywords []string) bool {
	field = strings.ToLower(field)
	for _, kw := range keywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}
