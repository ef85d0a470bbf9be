package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maho1100/minaria-quest/internal/llm"
	"github.com/Maho1100/minaria-quest/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect model provider configuration and usage",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model the app will use",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := llm.ConfigFromEnv()
		source := "MINARIA_* environment"
		if cfg.Validate() != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
				source = "vendor key discovery"
			} else {
				fmt.Println("Provider:  (none configured)")
				fmt.Println("Chat replies and voice will be offline.")
				fmt.Println("Set MINARIA_OPENAI_API_KEY (or OPENAI_API_KEY) to enable them.")
				return
			}
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Source:    %s\n", source)
		switch cfg.Provider {
		case "openai":
			fmt.Printf("Model:     %s\n", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", cfg.OpenAI.BaseURL)
			}
		case "anthropic":
			fmt.Printf("Model:     %s\n", cfg.Anthropic.Model)
		case "gemini":
			fmt.Printf("Model:     %s\n", cfg.Gemini.Model)
		}
	},
}

var llmEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show how many model requests have been recorded",
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

		n, err := st.CountLLMEvents(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d model requests recorded\n", n)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmEventsCmd)
}
