package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/query"
)

var variantsLevelFlag string

var variantLevels = map[string]query.Level{
	"file": query.LevelMultiFile,
	"test": query.LevelMultiTest,
	"case": query.LevelMultiCase,
}

// variantsCmd represents the variants command.
var variantsCmd = newVariantsCmd()

func newVariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants [root]",
		Short: "Print the minimal query list covering a root query",
		Long: `Print the smallest list of queries that covers every case under root
(default: webgpu:*), expanded down to --level and wherever an expectation
needs a more specific query.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawRoot := defaultServeRoot
			if len(args) == 1 {
				rawRoot = args[0]
			}

			root, err := query.Parse(rawRoot)
			if err != nil {
				return err
			}

			level, ok := variantLevels[variantsLevelFlag]
			if !ok {
				return fmt.Errorf("unknown level %q: want file, test or case", variantsLevelFlag)
			}

			return workflow.Variants(cmd.Context(), domain.VariantsArgs{
				Root:             root,
				ExpectationsPath: viper.GetString(expectationsConfigKey),
				Level:            level,
			})
		},
	}

	cmd.Flags().StringVarP(&variantsLevelFlag, "level", "l", "file", "expand every node down to this level: file, test or case")

	return cmd
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
