// Package cmd wires the CLI: the root command launches the TUI, the
// rest are small maintenance commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Maho1100/minaria-quest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "minaria",
	Short: "A gentle Python adventure in the terminal",
	Long:  "Minaria's Python Quest — heal bug monsters in the Cocomoa Kingdom while learning your first Python.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINARIA_DATA_DIR)")
	rootCmd.Flags().Bool("offline", false, "Run without a model provider (chat replies and voice disabled)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag first,
// then the default data-dir location.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultPath()
}
