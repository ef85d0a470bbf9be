package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LearnerState is the persisted progress snapshot.
type LearnerState struct {
	XP              int
	LastPlayDate    string
	LastLoginDate   string
	BonusGivenToday bool
	EarnedKeys      []string
}

// LoadLearner reads the snapshot. A fresh database yields the zero
// state, not an error.
func (s *Store) LoadLearner(ctx context.Context) (LearnerState, error) {
	var ls LearnerState
	var bonus int

	row := s.db.QueryRowContext(ctx,
		`SELECT xp, last_play_date, last_login_date, bonus_given_today FROM learner_state WHERE id = 1`)
	err := row.Scan(&ls.XP, &ls.LastPlayDate, &ls.LastLoginDate, &bonus)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return LearnerState{}, fmt.Errorf("load learner state: %w", err)
	}
	ls.BonusGivenToday = bonus != 0

	rows, err := s.db.QueryContext(ctx, `SELECT key FROM earned_deeds`)
	if err != nil {
		return LearnerState{}, fmt.Errorf("load earned deeds: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return LearnerState{}, fmt.Errorf("scan earned deed: %w", err)
		}
		ls.EarnedKeys = append(ls.EarnedKeys, k)
	}
	if err := rows.Err(); err != nil {
		return LearnerState{}, fmt.Errorf("iterate earned deeds: %w", err)
	}
	return ls, nil
}

// SaveLearner upserts the snapshot and records any newly earned deeds.
func (s *Store) SaveLearner(ctx context.Context, ls LearnerState) error {
	bonus := 0
	if ls.BonusGivenToday {
		bonus = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO learner_state (id, xp, last_play_date, last_login_date, bonus_given_today)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   xp = excluded.xp,
		   last_play_date = excluded.last_play_date,
		   last_login_date = excluded.last_login_date,
		   bonus_given_today = excluded.bonus_given_today`,
		ls.XP, ls.LastPlayDate, ls.LastLoginDate, bonus)
	if err != nil {
		return fmt.Errorf("save learner state: %w", err)
	}

	for _, k := range ls.EarnedKeys {
		if _, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO earned_deeds (key) VALUES (?)`, k); err != nil {
			return fmt.Errorf("save earned deed %q: %w", k, err)
		}
	}
	return nil
}

// Reset wipes all persisted progress and events.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"learner_state", "earned_deeds", "answer_events", "llm_events"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
