package model

import (
	"strings"

	"github.com/google/uuid"
)

// UserProfile is the read-only personalization context for scoring and
// meeting composition. The first goal is treated as the primary one.
type UserProfile struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	Role              string   `json:"role"`
	Goals             []string `json:"goals"`
	TargetConferences []string `json:"target_conferences"`
}

// EnsureID assigns a fresh identifier when the profile has none.
func (p *UserProfile) EnsureID() {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
}

// PrimaryGoal returns the first non-empty goal, or fallback when the
// profile carries none.
func (p *UserProfile) PrimaryGoal(fallback string) string {
	for _, g := range p.Goals {
		if strings.TrimSpace(g) != "" {
			return g
		}
	}
	return fallback
}
