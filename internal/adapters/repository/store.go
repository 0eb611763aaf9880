// Package repository defines the persistence interface for profiles,
// contacts and meeting recommendations, plus its errors.
package repository

import (
	"context"

	"github.com/medahead/conftarget/internal/domain/model"
)

// ContactFilter narrows contact queries. Zero values mean "no
// constraint": an empty Conference matches every conference, an empty
// Priority matches every tier, and Limit <= 0 returns all matches.
type ContactFilter struct {
	Conference string
	Priority   model.Priority
	Limit      int
}

// Store provides read/write access to the three logical collections.
// Implementations must guarantee atomic per-record replace semantics;
// concurrent writers follow last-writer-wins.
type Store interface {
	// SaveProfile upserts a profile by id.
	SaveProfile(ctx context.Context, p model.UserProfile) error

	// Profile returns the profile for id, or ErrNotFound.
	Profile(ctx context.Context, id string) (model.UserProfile, error)

	// InsertContacts bulk-inserts contacts in order.
	InsertContacts(ctx context.Context, contacts []model.Contact) error

	// Contacts returns contacts matching the filter in insertion order.
	Contacts(ctx context.Context, f ContactFilter) ([]model.Contact, error)

	// ReplaceContact fully replaces the record with the same id.
	// Replacing an unknown id returns ErrNotFound.
	ReplaceContact(ctx context.Context, c model.Contact) error

	// CountContacts counts contacts matching the filter.
	CountContacts(ctx context.Context, f ContactFilter) (int, error)

	// AppendMeetings appends recommendations; records are never updated.
	AppendMeetings(ctx context.Context, recs []model.MeetingRecommendation) error

	// CountMeetings counts stored meeting recommendations.
	CountMeetings(ctx context.Context) (int, error)

	// Close releases underlying resources.
	Close() error
}
