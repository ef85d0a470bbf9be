package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/store"
	"github.com/Maho1100/minaria-quest/internal/titles"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		ctx := context.Background()
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

		fmt.Printf("Title:  %s\n", state.Ledger.Title())
		fmt.Printf("Level:  %d\n", state.Ledger.Level())
		fmt.Printf("XP:     %d\n", state.Ledger.XP())
		if next, ok := titles.NextTier(ls.XP); ok {
			fmt.Printf("Next:   %s at %d XP (%d to go)\n", next.Name, next.MinXP, next.MinXP-ls.XP)
		}
		fmt.Println()

		for _, stage := range content.Stages() {
			done, total := state.StageDone(stage.ID)
			mark := fmt.Sprintf("%d/%d", done, total)
			if done >= total {
				mark = "cleared"
			}
			fmt.Printf("%s %-24s %s\n", stage.Emoji, stage.Name, mark)
		}

		if ls.LastPlayDate != "" {
			fmt.Printf("\nLast played: %s\n", ls.LastPlayDate)
		}
		return nil
	},
}
