package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Maho1100/minaria-quest/internal/app"
	"github.com/Maho1100/minaria-quest/internal/chat"
	"github.com/Maho1100/minaria-quest/internal/llm"
	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/store"
	"github.com/Maho1100/minaria-quest/internal/voice"
)

// runApp opens the store, restores progress, builds the session, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ls, err := st.LoadLearner(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	state := quest.Restore(ls.XP, ls.EarnedKeys)
	state.LastPlayDate = ls.LastPlayDate
	state.LastLoginDate = ls.LastLoginDate
	state.LoginBonusGivenToday = ls.BonusGivenToday
	state.TouchPlayDate(time.Now())

	sessionID := uuid.NewString()
	sess := session.New(sessionID, state, st)
	sess.VoiceDir = filepath.Join(filepath.Dir(dbPath), "voice")

	// Persist the touched dates right away so a crash mid-session
	// still counts as a visit.
	if err := sess.Save(ctx); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		fmt.Fprintln(os.Stderr, "Running offline; chat replies and voice are disabled.")
	} else if err := wireModelServices(ctx, sess, st, sessionID); err != nil {
		return err
	}

	opts := app.Options{
		Session:   sess,
		ShowIntro: ls.XP == 0 && len(ls.EarnedKeys) == 0,
	}
	if err := app.Run(opts); err != nil {
		return err
	}

	return sess.Save(context.Background())
}

// wireModelServices attaches chat and voice. A missing provider
// credential is a configuration error: the app refuses to start
// rather than quietly opening with Minaria muted. Pass --offline to
// run without a provider on purpose.
func wireModelServices(ctx context.Context, sess *session.Session, st *store.Store, sessionID string) error {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no model provider configured: set MINARIA_OPENAI_API_KEY (or OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY), or run with --offline")
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st, sessionID)
	if err != nil {
		return fmt.Errorf("model provider unavailable: %w", err)
	}
	sess.Chat = chat.NewService(provider)

	// Speech always goes through OpenAI, whichever vendor chats.
	if key := voiceKey(cfg); key != "" {
		sess.Voice = voice.New(provider, key)
	}
	return nil
}

func voiceKey(cfg llm.Config) string {
	if cfg.OpenAI.APIKey != "" {
		return cfg.OpenAI.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}
