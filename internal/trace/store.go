// Package trace persists run event logs. Each run appends its transition
// and guard events under its run id; nothing is ever updated or deleted, so
// a trace database is an append-only record of what every run did.
package trace

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"checkoutflow/internal/flow"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for run event logs.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path. Pass
// ":memory:" for an ephemeral store. Idempotent: pragmas and schema are
// applied on every open.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent runs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WriteEvent appends one event for the given run.
func (s *Store) WriteEvent(ctx context.Context, runID string, ev flow.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_events (run_id, seq, kind, state, guard, outcome, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, ev.Seq, ev.Kind, ev.State, ev.Guard, ev.Outcome, ev.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// EventsForRun returns a run's events ordered by sequence number.
func (s *Store) EventsForRun(ctx context.Context, runID string) ([]flow.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, kind, state, guard, outcome, detail
		 FROM run_events WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []flow.Event
	for rows.Next() {
		var ev flow.Event
		if err := rows.Scan(&ev.Seq, &ev.Kind, &ev.State, &ev.Guard, &ev.Outcome, &ev.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// RunIDs returns every run id present in the store, in first-seen order.
func (s *Store) RunIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT run_id FROM run_events ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query run ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
