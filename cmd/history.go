package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored quiz results",
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

		entries, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No quiz results yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSCORE\tACCURACY\tTIME")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d%%\t%s\n",
				e.ID,
				e.CreatedAt.Format("2006-01-02 15:04"),
				e.Score, e.TotalQuestions,
				e.Accuracy,
				formatSeconds(e.TimeTakenSeconds),
			)
		}
		return w.Flush()
	},
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
