package cmd

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes all quiz history. Re-run with --force to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		count, err := store.Count(cmd.Context())
		if err != nil {
			return fmt.Errorf("count results: %w", err)
		}
		if err := store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}

		fmt.Printf("Deleted %d results.\n", count)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
