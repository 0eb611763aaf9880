package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/medahead/conftarget/internal/domain/model"
	"github.com/medahead/conftarget/pkg/metrics"

	_ "modernc.org/sqlite"
)

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT,
	email TEXT,
	company TEXT,
	industry TEXT,
	role TEXT,
	goals TEXT,
	target_conferences TEXT
);

CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	seq INTEGER,
	name TEXT,
	email TEXT,
	company TEXT,
	title TEXT,
	industry TEXT,
	conference TEXT,
	score INTEGER,
	priority TEXT,
	notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_contacts_conference ON contacts(conference);
CREATE INDEX IF NOT EXISTS idx_contacts_priority ON contacts(priority);

CREATE TABLE IF NOT EXISTS meetings (
	id TEXT PRIMARY KEY,
	contact_id TEXT,
	contact_name TEXT,
	contact_company TEXT,
	suggested_time TEXT,
	reason TEXT,
	personalized_message TEXT,
	priority TEXT
);
`

// SQLiteStore is a Store backed by a SQLite database file. A seq column
// preserves contact insertion order across reads; goals and target
// conference lists are stored as JSON text.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorage, path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: set WAL mode: %v", ErrStorage, err)
	}
	if _, err := db.Exec(createTablesSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create tables: %v", ErrStorage, err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveProfile upserts a profile by id.
func (s *SQLiteStore) SaveProfile(ctx context.Context, p model.UserProfile) error {
	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return fmt.Errorf("%w: encode goals: %v", ErrStorage, err)
	}
	targets, err := json.Marshal(p.TargetConferences)
	if err != nil {
		return fmt.Errorf("%w: encode target conferences: %v", ErrStorage, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, company, industry, role, goals, target_conferences)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, email=excluded.email, company=excluded.company,
			industry=excluded.industry, role=excluded.role, goals=excluded.goals,
			target_conferences=excluded.target_conferences`,
		p.ID, p.Name, p.Email, p.Company, p.Industry, p.Role, string(goals), string(targets))
	if err != nil {
		return fmt.Errorf("%w: save profile: %v", ErrStorage, err)
	}
	return nil
}

// Profile returns the profile for id, or ErrNotFound.
func (s *SQLiteStore) Profile(ctx context.Context, id string) (model.UserProfile, error) {
	var p model.UserProfile
	var goals, targets string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, company, industry, role, goals, target_conferences
		FROM users WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Company, &p.Industry, &p.Role, &goals, &targets)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: read profile: %v", ErrStorage, err)
	}
	if err := json.Unmarshal([]byte(goals), &p.Goals); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: decode goals: %v", ErrStorage, err)
	}
	if err := json.Unmarshal([]byte(targets), &p.TargetConferences); err != nil {
		return model.UserProfile{}, fmt.Errorf("%w: decode target conferences: %v", ErrStorage, err)
	}
	return p, nil
}

// InsertContacts bulk-inserts contacts in order within one transaction.
func (s *SQLiteStore) InsertContacts(ctx context.Context, contacts []model.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin insert: %v", ErrStorage, err)
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM contacts`).Scan(&seq); err != nil {
		return fmt.Errorf("%w: read sequence: %v", ErrStorage, err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO contacts (id, seq, name, email, company, title, industry, conference, score, priority, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %v", ErrStorage, err)
	}
	defer stmt.Close()

	for _, c := range contacts {
		seq++
		if _, err := stmt.ExecContext(ctx, c.ID, seq, c.Name, c.Email, c.Company, c.Title,
			c.Industry, c.Conference, c.Score, string(c.Priority), c.Notes); err != nil {
			return fmt.Errorf("%w: insert contact %s: %v", ErrStorage, c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit insert: %v", ErrStorage, err)
	}
	if n, err := s.CountContacts(ctx, ContactFilter{}); err == nil {
		metrics.UpdateTotalContacts(n)
	}
	return nil
}

// Contacts returns contacts matching the filter in insertion order.
func (s *SQLiteStore) Contacts(ctx context.Context, f ContactFilter) ([]model.Contact, error) {
	query, args := contactQuery(`SELECT id, name, email, company, title, industry, conference, score, priority, notes FROM contacts`, f)
	query += " ORDER BY seq"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query contacts: %v", ErrStorage, err)
	}
	defer rows.Close()

	var out []model.Contact
	for rows.Next() {
		var c model.Contact
		var priority string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Title,
			&c.Industry, &c.Conference, &c.Score, &priority, &c.Notes); err != nil {
			return nil, fmt.Errorf("%w: scan contact: %v", ErrStorage, err)
		}
		c.Priority = model.Priority(priority)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate contacts: %v", ErrStorage, err)
	}
	return out, nil
}

// ReplaceContact fully replaces the record with the same id, keeping
// its insertion sequence.
func (s *SQLiteStore) ReplaceContact(ctx context.Context, c model.Contact) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE contacts SET name=?, email=?, company=?, title=?, industry=?,
			conference=?, score=?, priority=?, notes=?
		WHERE id=?`,
		c.Name, c.Email, c.Company, c.Title, c.Industry, c.Conference,
		c.Score, string(c.Priority), c.Notes, c.ID)
	if err != nil {
		return fmt.Errorf("%w: replace contact: %v", ErrStorage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: replace contact: %v", ErrStorage, err)
	}
	if n == 0 {
		return fmt.Errorf("contact %q: %w", c.ID, ErrNotFound)
	}
	return nil
}

// CountContacts counts contacts matching the filter.
func (s *SQLiteStore) CountContacts(ctx context.Context, f ContactFilter) (int, error) {
	query, args := contactQuery(`SELECT COUNT(*) FROM contacts`, f)
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count contacts: %v", ErrStorage, err)
	}
	return n, nil
}

// AppendMeetings appends recommendations within one transaction.
func (s *SQLiteStore) AppendMeetings(ctx context.Context, recs []model.MeetingRecommendation) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin append: %v", ErrStorage, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO meetings (id, contact_id, contact_name, contact_company, suggested_time, reason, personalized_message, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare append: %v", ErrStorage, err)
	}
	defer stmt.Close()

	for _, r := range recs {
		if _, err := stmt.ExecContext(ctx, r.ID, r.ContactID, r.ContactName, r.ContactCompany,
			r.SuggestedTime, r.Reason, r.PersonalizedMessage, string(r.Priority)); err != nil {
			return fmt.Errorf("%w: append meeting %s: %v", ErrStorage, r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit append: %v", ErrStorage, err)
	}
	if n, err := s.CountMeetings(ctx); err == nil {
		metrics.UpdateTotalMeetings(n)
	}
	return nil
}

// CountMeetings counts stored meeting recommendations.
func (s *SQLiteStore) CountMeetings(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM meetings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count meetings: %v", ErrStorage, err)
	}
	return n, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func contactQuery(base string, f ContactFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Conference != "" {
		conds = append(conds, "conference = ?")
		args = append(args, f.Conference)
	}
	if f.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(f.Priority))
	}
	if len(conds) > 0 {
		base += " WHERE " + strings.Join(conds, " AND ")
	}
	return base, args
}
