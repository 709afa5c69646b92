package cmd

import (
	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take [file]",
	Short: "Start a new quiz",
	Long:  "Start a new quiz. With a file argument the setup screen opens directly with that document.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docPath := ""
		if len(args) == 1 {
			docPath = args[0]
		}
		return runApp(cmd, docPath)
	},
}
