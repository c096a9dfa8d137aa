package cmd

import (
	"github.com/spf13/cobra"
)

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs",
		Long:  "List the most recent runs kept in the result store, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.History(cmd.Context(), historyLimitFlag)
		},
	}

	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", defaultHistorySize, "number of runs to list")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
