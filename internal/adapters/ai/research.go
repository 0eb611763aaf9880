// Package ai defines the contract for the external research
// collaborator. Its output is advisory text only; no scoring or
// meeting-selection path depends on it.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable indicates no research backend is configured.
var ErrUnavailable = errors.New("research collaborator unavailable")

// Researcher answers free-text conference research queries.
type Researcher interface {
	// Research returns research text for the query, scoped to year
	// when non-empty. Honors ctx for cancellation and timeouts.
	Research(ctx context.Context, query, year string) (string, error)
}
