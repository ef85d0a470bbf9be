package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maho1100/minaria-quest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This erases all XP, titles, and history. Run again with --force to confirm.")
			return nil
		}

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

		if err := st.Reset(ctx); err != nil {
			return err
		}
		fmt.Println("All progress wiped. The kingdom awaits a fresh adventurer.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation")
}
