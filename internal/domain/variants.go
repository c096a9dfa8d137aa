package domain

import (
	"context"
	"fmt"

	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

// MinimalQueries returns the smallest list of queries that covers root
// while giving every expectation query its own entry, expanding the tree
// through level. Each returned query can become one test variant.
func MinimalQueries(
	ctx context.Context,
	loader Loader,
	root query.Query,
	expectations []m.QueryExpectation,
	level query.Level,
) ([]query.Query, error) {
	parsed, err := ParseExpectations(expectations)
	if err != nil {
		return nil, err
	}

	subqueries := make([]query.Query, 0, len(parsed))
	for _, e := range parsed {
		subqueries = append(subqueries, e.Query)
	}

	tree, err := loader.LoadTree(ctx, root, subqueries)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", root, err)
	}

	var out []query.Query
	for n := range tree.CollapsedNodes(CollapseOptions{AlwaysExpandThroughLevel: level}) {
		out = append(out, n.Query())
	}

	return out, nil
}
