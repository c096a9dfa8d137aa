package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/cts/internal/domain"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare the results of two stored runs",
		Long: `Print a unified diff of the case statuses of two stored runs. Runs are
named by id or by a unique id prefix, as printed by 'cts history'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{From: args[0], To: args[1]})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
