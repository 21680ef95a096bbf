package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/repocanvas/internal/domain/model"
	"github.com/ericfisherdev/repocanvas/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.LookupStore = (*LookupRepo)(nil)

// LookupRepo is the SQLite implementation of the LookupStore port interface.
type LookupRepo struct {
	db *DB
}

// NewLookupRepo creates a new LookupRepo backed by the given DB.
func NewLookupRepo(db *DB) *LookupRepo {
	return &LookupRepo{db: db}
}

// Record inserts a lookup and returns it with the assigned ID. A zero
// LookedUpAt is replaced with the current UTC time.
func (r *LookupRepo) Record(ctx context.Context, lookup model.Lookup) (model.Lookup, error) {
	const query = `INSERT INTO lookups (username, outcome, repo_count, looked_up_at) VALUES (?, ?, ?, ?)`

	if lookup.LookedUpAt.IsZero() {
		lookup.LookedUpAt = time.Now().UTC()
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		lookup.Username,
		string(lookup.Outcome),
		lookup.RepoCount,
		lookup.LookedUpAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.Lookup{}, fmt.Errorf("record lookup for %q: %w", lookup.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Lookup{}, fmt.Errorf("get lookup id: %w", err)
	}
	lookup.ID = id

	return lookup, nil
}

// ListRecent returns up to limit lookups, newest first.
func (r *LookupRepo) ListRecent(ctx context.Context, limit int) ([]model.Lookup, error) {
	const query = `SELECT id, username, outcome, repo_count, looked_up_at FROM lookups ORDER BY id DESC LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookups: %w", err)
	}
	defer rows.Close()

	lookups := []model.Lookup{}
	for rows.Next() {
		var l model.Lookup
		var outcome, lookedUpAt string
		if err := rows.Scan(&l.ID, &l.Username, &outcome, &l.RepoCount, &lookedUpAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		l.Outcome = model.LookupOutcome(outcome)
		l.LookedUpAt, err = parseTime(lookedUpAt)
		if err != nil {
			return nil, fmt.Errorf("parse looked_up_at for lookup %d: %w", l.ID, err)
		}
		lookups = append(lookups, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookups: %w", err)
	}

	return lookups, nil
}

// RecentUsernames returns up to limit distinct usernames whose lookup
// succeeded, ordered by their latest successful lookup.
func (r *LookupRepo) RecentUsernames(ctx context.Context, limit int) ([]string, error) {
	const query = `SELECT username FROM lookups WHERE outcome = 'ok' GROUP BY username ORDER BY MAX(id) DESC LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent usernames: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usernames: %w", err)
	}

	return names, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
