package cmd

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/cts/internal/controller"
	"gooze.dev/pkg/cts/internal/domain"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

const serveHost = "localhost"

var servePortFlag int
var serveRootFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run cases on request over HTTP",
		Long: `Load every case under --root and answer HTTP requests:

  GET|POST /run?<query>   run one case, answer {"status","message"}
  GET|POST /terminate     stop the server

The chosen port is printed as "Server listening at [[port]]".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := query.Parse(viper.GetString(serveRootConfigKey))
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			ctx := cmd.Context()

			var expectations []m.QueryExpectation
			if path := viper.GetString(expectationsConfigKey); path != "" {
				expectations, err = expectationStore.LoadExpectations(path)
				if err != nil {
					slog.Error("Failed to load expectations", "path", path, "error", err)
					return fmt.Errorf("load expectations: %w", err)
				}
			}

			index, err := domain.NewCaseIndex(ctx, loader, root, expectations, m.Options{
				Debug: viper.GetBool(debugConfigKey),
			})
			if err != nil {
				return err
			}

			addr := net.JoinHostPort(serveHost, strconv.Itoa(servePortFlag))

			return controller.NewServer(index, cmd.OutOrStdout()).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().IntVar(&servePortFlag, "port", 0, "port to listen on (0 picks a free port)")
	cmd.Flags().StringVar(&serveRootFlag, "root", viper.GetString(serveRootConfigKey), "query selecting the cases that can be run")
	bindFlagToConfig(cmd.Flags().Lookup("root"), serveRootConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
