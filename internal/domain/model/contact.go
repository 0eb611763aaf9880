// Package model contains domain entities passed between layers.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Priority is the coarse value tier assigned to a contact by scoring.
type Priority string

// Priority tiers. "low" is reported in aggregate counts but no scoring
// rule currently assigns it; the tier is kept so dashboards stay stable
// if a low band is ever introduced.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority normalizes a raw string into a known tier, defaulting
// to medium for unknown input.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Defaults applied when an ingested row omits a column.
const (
	DefaultIndustry   = "Healthcare"
	DefaultConference = "HIMSS 2025"
)

// Contact is an attendee/vendor record subject to scoring.
type Contact struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Industry   string   `json:"industry"`
	Conference string   `json:"conference"`
	Score      int      `json:"score"`
	Priority   Priority `json:"priority"`
	Notes      string   `json:"notes"`
}

// NewContact builds a Contact with defaulting rules centralized here:
// a fresh id when absent, industry and conference fallbacks, and the
// medium starting tier.
func NewContact(name, email, company, title, industry, conference string) Contact {
	if strings.TrimSpace(industry) == "" {
		industry = DefaultIndustry
	}
	if strings.TrimSpace(conference) == "" {
		conference = DefaultConference
	}
	return Contact{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Company:    company,
		Title:      title,
		Industry:   industry,
		Conference: conference,
		Priority:   PriorityMedium,
	}
}
