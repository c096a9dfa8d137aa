package unittests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
	"gooze.dev/pkg/cts/internal/registry"
)

func TestSuite(t *testing.T) {
	loader := domain.NewLoader(registry.Default, registry.Default)
	runner := domain.NewRunner(loader, logging.NewLogger(false))

	results, err := runner.Run(context.Background(), domain.RunArgs{
		Queries:  []query.Query{query.MultiFile(Suite, nil)},
		Parallel: 4,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	skipped := 0

	for _, r := range results {
		switch r.Result.Status {
		case m.StatusPass:
		case m.StatusSkip:
			skipped++
		default:
			assert.Fail(t, "case did not pass", "%s: %s\n%s", r.Query, r.Result.Status, r.Result.PrettyLogs())
		}
	}

	assert.Equal(t, 1, skipped, "only the unimplemented expand test skips")
}

func TestSuite_Listing(t *testing.T) {
	entries, err := registry.Default.Listing(context.Background(), Suite)
	require.NoError(t, err)

	assert.Equal(t, []m.ListingEntry{
		{File: []string{}, Readme: "Unit tests for the CTS framework."},
		{File: []string{"logger"}},
		{File: []string{"params"}},
		{File: []string{"query"}},
	}, entries)
}

func TestSuite_Tree(t *testing.T) {
	loader := domain.NewLoader(registry.Default, registry.Default)

	tree, err := loader.LoadTree(context.Background(), query.MustParse("unittests:logger:debug:*"), nil)
	require.NoError(t, err)

	leaves, err := loader.LoadCases(context.Background(), query.MustParse("unittests:logger:debug:*"))
	require.NoError(t, err)
	require.Len(t, leaves, 2)
	assert.Equal(t, "unittests:logger:debug:debug=true;logsCount=1", leaves[0].Query().String())
	assert.Equal(t, "unittests:logger:debug:debug=false;logsCount=0", leaves[1].Query().String())
	assert.Contains(t, tree.String(), "unittests:logger:debug:*")
}
