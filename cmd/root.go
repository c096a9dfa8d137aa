// Package cmd provides the root command and CLI setup for cts.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/controller"
	"gooze.dev/pkg/cts/internal/domain"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
	"gooze.dev/pkg/cts/internal/registry"
)

var expectationStore adapter.ExpectationStore
var resultStore adapter.ResultStore
var loader domain.Loader
var workflow domain.Workflow
var ui controller.UI

// verboseFlag prints the results document and enables debug logging.
var verboseFlag bool

// debugFlag records debug log messages in case results.
var debugFlag bool

var listingPathFlag string
var expectationsPathFlag string
var storePathFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, viper.GetBool(uiTUIConfigKey) && controller.IsTTY(os.Stdout))
	expectationStore = adapter.NewYAMLExpectationStore()
	resultStore = adapter.NewLazyResultStore(func() string {
		return viper.GetString(storePathConfigKey)
	})
	loader = domain.NewLoader(configuredListing{}, registry.Default)
	workflow = domain.NewWorkflow(loader, expectationStore, resultStore, ui)
}

const queryHelp = `Queries follow the suite:file,path:test,path:param=value;... grammar:
  - webgpu:*                         every case of a suite
  - webgpu:shader,*                  every file below a directory
  - webgpu:shader,compile:*          every test of a file
  - webgpu:shader,compile:stage:*    every case of a test
  - webgpu:a:b:x=1;y="z"             one case
Options may follow a query as &debug=1&power_preference=low-power.
Arguments without a ':' filter cases by substring.`

const rootLongDescription = `cts is the conformance test suite runner. It loads registered spec
files, expands queries into test cases and runs them, reporting a pass,
skip, warn or fail status per case.

` + queryHelp

const runLongDescription = `Run the cases selected by queries (default: every registered suite).

` + queryHelp

const listLongDescription = `List the cases selected by queries, or print their trees.

` + queryHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cts",
		Short: "Conformance test suite runner",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "print the results JSON and log at debug level")

	cmd.PersistentFlags().BoolVar(&debugFlag, debugFlagName, viper.GetBool(debugConfigKey), "record debug messages in case logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(debugFlagName), debugConfigKey)

	cmd.PersistentFlags().StringVar(&listingPathFlag, listingFlagName, viper.GetString(listingPathConfigKey), "directory of <suite>.json listings (default: registered suites)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(listingFlagName), listingPathConfigKey)

	cmd.PersistentFlags().StringVarP(&expectationsPathFlag, expectationsFlag, "e", viper.GetString(expectationsConfigKey), "YAML file of pass/fail/skip expectations")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(expectationsFlag), expectationsConfigKey)

	cmd.PersistentFlags().StringVar(&storePathFlag, storeFlagName, viper.GetString(storePathConfigKey), "SQLite database of stored runs (empty disables)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(storeFlagName), storePathConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newListingAdapter opens the listing directory dir.
var newListingAdapter = func(dir string) adapter.ListingFSAdapter {
	return adapter.NewLocalListingFSAdapter(dir)
}

// configuredListing reads listings from listing.path when set and from
// the registry otherwise. The key is read per call so flags apply.
type configuredListing struct{}

func (configuredListing) Listing(ctx context.Context, suite string) ([]m.ListingEntry, error) {
	if dir := viper.GetString(listingPathConfigKey); dir != "" {
		return newListingAdapter(dir).Listing(ctx, suite)
	}

	return registry.Default.Listing(ctx, suite)
}

// parsedArgs are the positional arguments of run and list.
type parsedArgs struct {
	queries []query.Query
	filters []string
	options m.Options
}

// parseQueryArgs splits args into queries and substring filters. An
// argument is a query when it contains ':' or names a .spec.go file;
// options after '&' are merged across queries. Without any query every
// registered suite is selected.
func parseQueryArgs(args []string) (parsedArgs, error) {
	var parsed parsedArgs

	for _, arg := range args {
		if !strings.Contains(arg, ":") && m.ConvertPathLikeToQuery(arg) == arg {
			parsed.filters = append(parsed.filters, arg)
			continue
		}

		raw, options, err := m.ParseSearchParamLike(arg)
		if err != nil {
			return parsedArgs{}, fmt.Errorf("parse %q: %w", arg, err)
		}

		parsed.options = mergeOptions(parsed.options, options)

		for _, s := range raw {
			q, err := query.Parse(s)
			if err != nil {
				return parsedArgs{}, err
			}

			parsed.queries = append(parsed.queries, q)
		}
	}

	if len(parsed.queries) == 0 {
		for _, suite := range registry.Default.Suites() {
			parsed.queries = append(parsed.queries, query.MultiFile(suite, nil))
		}
	}

	parsed.options.Debug = parsed.options.Debug || viper.GetBool(debugConfigKey)

	return parsed, nil
}

func mergeOptions(a, b m.Options) m.Options {
	a.Worker = a.Worker || b.Worker
	a.Debug = a.Debug || b.Debug
	a.Compatibility = a.Compatibility || b.Compatibility
	a.UnrollConstEvalLoops = a.UnrollConstEvalLoops || b.UnrollConstEvalLoops

	if b.PowerPreference != "" {
		a.PowerPreference = b.PowerPreference
	}

	return a
}
