// Package session bundles the live dependencies of one sitting: the
// quest state, the store it persists into, and the optional model and
// voice services. Screens receive a *Session instead of a parameter
// list per service.
package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/Maho1100/minaria-quest/internal/chat"
	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/store"
	"github.com/Maho1100/minaria-quest/internal/ui/layout"
	"github.com/Maho1100/minaria-quest/internal/voice"
)

// Session is the live state of one sitting. Chat and Voice are nil
// when no model provider is configured; screens degrade gracefully.
type Session struct {
	ID    string
	State *quest.State
	Store *store.Store
	Chat  *chat.Service
	Voice *voice.Synthesizer

	// VoiceDir is where synthesized clips land.
	VoiceDir string

	Rng *rand.Rand
}

// New creates a Session around restored quest state.
func New(id string, state *quest.State, st *store.Store) *Session {
	return &Session{
		ID:    id,
		State: state,
		Store: st,
		Rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Save writes the current progress snapshot. Safe to call after every
// graded answer; the store upserts.
func (s *Session) Save(ctx context.Context) error {
	if s.Store == nil {
		return nil
	}
	return s.Store.SaveLearner(ctx, store.LearnerState{
		XP:              s.State.Ledger.XP(),
		LastPlayDate:    s.State.LastPlayDate,
		LastLoginDate:   s.State.LastLoginDate,
		BonusGivenToday: s.State.LoginBonusGivenToday,
		EarnedKeys:      s.State.Ledger.EarnedKeys(),
	})
}

// RecordAnswer saves progress and appends a grading event. A failed
// write never blocks the lesson, but it is returned so the screen can
// warn the learner; the in-memory state stays authoritative.
func (s *Session) RecordAnswer(ctx context.Context, stageID, question int, step quest.Step, submitted string, res quest.Result) error {
	if s.Store == nil {
		return nil
	}
	saveErr := s.Save(ctx)
	recordErr := s.Store.RecordAnswer(ctx, store.AnswerEvent{
		SessionID: s.ID,
		Stage:     stageID,
		Question:  question,
		Step:      int(step),
		Submitted: submitted,
		Correct:   res.Correct,
		XPGained:  res.XPGained,
	})
	if saveErr != nil {
		return saveErr
	}
	return recordErr
}

// HeaderInfo snapshots the ledger for the header bar.
func (s *Session) HeaderInfo() layout.HeaderInfo {
	return layout.HeaderInfo{
		Level: s.State.Ledger.Level(),
		XP:    s.State.Ledger.XP(),
		Title: s.State.Ledger.Title(),
	}
}
