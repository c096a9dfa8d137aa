package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/cts/internal/domain"
)

var listTreeFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [queries...]",
		Short: "List test cases or print query trees",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseQueryArgs(args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Queries: parsed.queries,
				Filters: parsed.filters,
				Tree:    listTreeFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&listTreeFlag, "tree", "t", false, "print the tree of each query instead of its cases")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
