package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/generate"
	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// docPath, when non-empty, opens the quiz setup screen directly.
func runApp(cmd *cobra.Command, docPath string) error {
	ctx := cmd.Context()

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, cleanup, err := logging.Setup(verbose)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer cleanup()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	opts := app.Options{
		Store:        store,
		DocumentPath: docPath,
	}

	// The LLM provider is optional. Without one, history and review still
	// work; only new quiz generation is disabled.
	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "New quizzes will be unavailable.")
	} else {
		opts.Generate = generate.New(provider, generate.DefaultConfig())
	}

	return app.Run(opts)
}
