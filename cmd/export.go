package cmd

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [result-id]",
	Short: "Export a quiz result as JSON",
	Long:  "Export a stored quiz result as a JSON file. With no ID the most recent result is exported.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		var id string
		if len(args) == 1 {
			id = args[0]
		} else {
			entries, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list results: %w", err)
			}
			if len(entries) == 0 {
				return fmt.Errorf("no quiz results to export")
			}
			id = entries[0].ID
		}

		result, err := store.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("load result %s: %w", id, err)
		}

		dir, _ := cmd.Flags().GetString("dir")
		path, err := history.Export(result, dir)
		if err != nil {
			return err
		}

		fmt.Println("Exported to", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("dir", ".", "Directory to write the JSON file to")
}
