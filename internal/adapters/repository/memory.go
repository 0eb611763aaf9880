package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/medahead/conftarget/internal/domain/model"
	"github.com/medahead/conftarget/pkg/metrics"
)

// MemoryStore is an in-memory Store implementation. It preserves
// contact insertion order so filtered reads are deterministic, which
// the stable score ordering of analysis runs depends on.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]model.UserProfile
	contacts []model.Contact
	byID     map[string]int
	meetings []model.MeetingRecommendation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]model.UserProfile),
		byID:     make(map[string]int),
	}
}

// SaveProfile upserts a profile by id.
func (s *MemoryStore) SaveProfile(_ context.Context, p model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
	return nil
}

// Profile returns the profile for id, or ErrNotFound.
func (s *MemoryStore) Profile(_ context.Context, id string) (model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return model.UserProfile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// InsertContacts bulk-inserts contacts in order.
func (s *MemoryStore) InsertContacts(_ context.Context, contacts []model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range contacts {
		s.byID[c.ID] = len(s.contacts)
		s.contacts = append(s.contacts, c)
	}
	metrics.UpdateTotalContacts(len(s.contacts))
	return nil
}

// Contacts returns contacts matching the filter in insertion order.
func (s *MemoryStore) Contacts(_ context.Context, f ContactFilter) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Contact
	for _, c := range s.contacts {
		if !matches(c, f) {
			continue
		}
		out = append(out, c)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// ReplaceContact fully replaces the record with the same id.
func (s *MemoryStore) ReplaceContact(_ context.Context, c model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[c.ID]
	if !ok {
		return fmt.Errorf("contact %q: %w", c.ID, ErrNotFound)
	}
	s.contacts[i] = c
	return nil
}

// CountContacts counts contacts matching the filter.
func (s *MemoryStore) CountContacts(_ context.Context, f ContactFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.contacts {
		if matches(c, f) {
			n++
		}
	}
	return n, nil
}

// AppendMeetings appends recommendations.
func (s *MemoryStore) AppendMeetings(_ context.Context, recs []model.MeetingRecommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append(s.meetings, recs...)
	metrics.UpdateTotalMeetings(len(s.meetings))
	return nil
}

// CountMeetings counts stored meeting recommendations.
func (s *MemoryStore) CountMeetings(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meetings), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

func matches(c model.Contact, f ContactFilter) bool {
	if f.Conference != "" && c.Conference != f.Conference {
		return false
	}
	if f.Priority != "" && c.Priority != f.Priority {
		return false
	}
	return true
}
