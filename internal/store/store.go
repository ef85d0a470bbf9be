// Package store persists learner progress and event history in a
// local sqlite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps the sqlite database holding all persistent state.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location, honoring
// MINARIA_DATA_DIR when set.
func DefaultPath() (string, error) {
	if dir := os.Getenv("MINARIA_DATA_DIR"); dir != "" {
		return filepath.Join(dir, "minaria.db"), nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(cfg, "minaria", "minaria.db"), nil
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS learner_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			xp INTEGER NOT NULL DEFAULT 0,
			last_play_date TEXT NOT NULL DEFAULT '',
			last_login_date TEXT NOT NULL DEFAULT '',
			bonus_given_today INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS earned_deeds (
			key TEXT PRIMARY KEY,
			earned_ts TEXT NOT NULL DEFAULT (datetime('now'))
		);`,
		`CREATE TABLE IF NOT EXISTS answer_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			stage INTEGER NOT NULL,
			question INTEGER NOT NULL,
			step INTEGER NOT NULL,
			submitted TEXT NOT NULL,
			correct INTEGER NOT NULL,
			xp_gained INTEGER NOT NULL DEFAULT 0,
			created_ts TEXT NOT NULL DEFAULT (datetime('now'))
		);`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			purpose TEXT NOT NULL,
			model TEXT NOT NULL,
			input_tokens INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_ts TEXT NOT NULL DEFAULT (datetime('now'))
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
