package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
)

var listingSuiteFlag string
var listingOutFlag string

// listingCmd represents the listing command.
var listingCmd = newListingCmd()

func newListingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing <dir>",
		Short: "Generate the listing of a suite source tree",
		Long: `Crawl a suite source directory and print its listing as JSON: every
README.txt becomes a directory entry and every *.spec.go file a spec file
entry. With --out the listing is written to <out>/<suite>.json instead,
where --listing can read it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			suite := listingSuiteFlag
			if suite == "" {
				suite = filepath.Base(filepath.Clean(dir))
			}

			crawler := newListingAdapter(listingOutFlag)

			entries, err := crawler.Crawl(dir)
			if err != nil {
				slog.Error("Failed to crawl suite", "dir", dir, "error", err)
				return err
			}

			if listingOutFlag == "" {
				return crawler.WriteListing(cmd.OutOrStdout(), entries)
			}

			if err := crawler.SaveListing(suite, entries); err != nil {
				return fmt.Errorf("save listing: %w", err)
			}

			cmd.Printf("Wrote %d entries to %s\n", len(entries), filepath.Join(listingOutFlag, suite+".json"))

			return nil
		},
	}

	cmd.Flags().StringVar(&listingSuiteFlag, "suite", "", "suite name (default: base name of dir)")
	cmd.Flags().StringVarP(&listingOutFlag, "out", "o", "", "directory to write <suite>.json into (default: print to stdout)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listingCmd)
}
