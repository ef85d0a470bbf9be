package store

import (
	"context"
	"fmt"
)

// AnswerEvent records one graded submission.
type AnswerEvent struct {
	SessionID string
	Stage     int
	Question  int
	Step      int
	Submitted string
	Correct   bool
	XPGained  int
}

// RecordAnswer appends a grading event. Event writes are best effort;
// callers log failures and move on.
func (s *Store) RecordAnswer(ctx context.Context, ev AnswerEvent) error {
	correct := 0
	if ev.Correct {
		correct = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answer_events (session_id, stage, question, step, submitted, correct, xp_gained)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Stage, ev.Question, ev.Step, ev.Submitted, correct, ev.XPGained)
	if err != nil {
		return fmt.Errorf("record answer event: %w", err)
	}
	return nil
}

// LLMEvent records one model request for later inspection.
type LLMEvent struct {
	SessionID    string
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	Err          string
}

// RecordLLM appends a model request event.
func (s *Store) RecordLLM(ctx context.Context, ev LLMEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events (session_id, purpose, model, input_tokens, output_tokens, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Purpose, ev.Model, ev.InputTokens, ev.OutputTokens, ev.Err)
	if err != nil {
		return fmt.Errorf("record llm event: %w", err)
	}
	return nil
}

// CountLLMEvents returns the number of recorded model requests.
func (s *Store) CountLLMEvents(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM llm_events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count llm events: %w", err)
	}
	return n, nil
}
