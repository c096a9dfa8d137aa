package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/domain"
)

const workerCommandName = "worker"

// workerCmd represents the worker command started by 'run --workers'.
var workerCmd = newWorkerCmd()

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:    workerCommandName,
		Short:  "Answer case requests on stdin and stdout",
		Long:   "Run cases named by msgpack requests read from stdin and write their results to stdout.",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return adapter.ServeWorker(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), domain.NewWorkerHandler(loader))
		},
	}
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
