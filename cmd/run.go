package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/domain"
)

var runParallelFlag int
var runShardFlag string
var runTimeoutFlag int64
var runWorkersFlag int
var runWriteExpectationsFlag string

// newWorkerPool starts the worker processes used by --workers.
var newWorkerPool = func(ctx context.Context, size int) (adapter.CaseExecutor, func() error, error) {
	executable, err := os.Executable()
	if err != nil {
		return nil, nil, fmt.Errorf("locate executable: %w", err)
	}

	pool, err := adapter.NewWorkerPool(ctx, size, adapter.WorkerCommand{
		Path: executable,
		Args: []string{workerCommandName},
		Env:  os.Environ(),
	})
	if err != nil {
		return nil, nil, err
	}

	return pool, pool.Close, nil
}

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [queries...]",
		Short: "Run test cases",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseQueryArgs(args)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			shardIndex, totalShards := parseShardFlag(runShardFlag)
			ctx := cmd.Context()

			runArgs := domain.RunArgs{
				Queries:               parsed.queries,
				Filters:               parsed.filters,
				Options:               parsed.options,
				Parallel:              uint(max(viper.GetInt(runParallelConfigKey), 0)),
				Timeout:               runTimeout(),
				ShardIndex:            uint(shardIndex),
				TotalShardCount:       uint(totalShards),
				ExpectationsPath:      viper.GetString(expectationsConfigKey),
				WriteExpectationsPath: runWriteExpectationsFlag,
				Verbose:               verboseFlag,
			}

			if workers := viper.GetInt(runWorkersConfigKey); workers > 0 {
				executor, closePool, err := newWorkerPool(ctx, workers)
				if err != nil {
					slog.Error("Failed to start workers", "workers", workers, "error", err)
					return fmt.Errorf("start workers: %w", err)
				}

				defer func() {
					if err := closePool(); err != nil {
						slog.Error("Failed to stop workers", "error", err)
					}
				}()

				runArgs.Executor = executor
				runArgs.Options.Worker = true
			}

			summary, err := workflow.Run(ctx, runArgs)
			if err != nil {
				return err
			}

			if !summary.OK() {
				return fmt.Errorf("%d of %d cases failed or warned", summary.Failed+summary.Warned, summary.Total)
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of cases run concurrently (0 for unbounded)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().Int64Var(&runTimeoutFlag, runTimeoutFlagName, viper.GetInt64(runTimeoutConfigKey), "per-case timeout in seconds (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(runTimeoutFlagName), runTimeoutConfigKey)

	cmd.Flags().IntVarP(&runWorkersFlag, runWorkersFlagName, "w", viper.GetInt(runWorkersConfigKey), "run cases in this many worker processes (0 runs in process)")
	bindFlagToConfig(cmd.Flags().Lookup(runWorkersFlagName), runWorkersConfigKey)

	cmd.Flags().StringVarP(&runShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringVar(&runWriteExpectationsFlag, "write-expectations", "", "write a fail expectation for every failing case to this YAML file")
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
