// Package history keeps a journal of routed invocations in SQLite.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
)

// DefaultLimit applies when List is called with a non-positive limit
const DefaultLimit = 50

// Entry is one recorded invocation
type Entry struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Command   string    `json:"command"`
	Success   bool      `json:"success"`
	ErrorCode string    `json:"error_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists entries in a SQLite database
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, dbError(err, "failed to create directory", "history.Open")
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "history.Open")
	}
	// one connection keeps an in-memory database alive between calls
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "history.Open")
	}

	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		input TEXT NOT NULL,
		command TEXT NOT NULL DEFAULT '',
		success INTEGER NOT NULL DEFAULT 0,
		error_code TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_created ON invocations(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores e, assigning an ID and timestamp when missing
func (s *Store) Record(ctx context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invocations (id, input, command, success, error_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.Input, e.Command, e.Success, e.ErrorCode, e.CreatedAt)
	if err != nil {
		return dbError(err, "failed to record invocation", "history.Record")
	}

	return nil
}

// List returns the newest entries first
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input, command, success, error_code, created_at
		FROM invocations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, dbError(err, "failed to list invocations", "history.List")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Input, &e.Command, &e.Success, &e.ErrorCode, &e.CreatedAt); err != nil {
			return nil, dbError(err, "failed to scan invocation", "history.List")
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to list invocations", "history.List")
	}

	return entries, nil
}

// Inputs returns raw inputs oldest first, for prompt recall
func (s *Store) Inputs(ctx context.Context, limit int) ([]string, error) {
	entries, err := s.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	inputs := make([]string, len(entries))
	for i, e := range entries {
		inputs[len(entries)-1-i] = e.Input
	}
	return inputs, nil
}

// Clear removes every entry and reports how many were deleted
func (s *Store) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM invocations`)
	if err != nil {
		return 0, dbError(err, "failed to clear history", "history.Clear")
	}

	n, _ := result.RowsAffected()
	return n, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func dbError(err error, message, operation string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}
