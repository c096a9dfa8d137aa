package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

// CaseIndex holds every case under a root query, keyed by query string,
// so long-running drivers can run cases by name without reloading.
type CaseIndex struct {
	leaves       map[string]*Leaf
	expectations []Expectation
	options      m.Options
}

// NewCaseIndex loads all cases of root.
func NewCaseIndex(
	ctx context.Context,
	loader Loader,
	root query.Query,
	expectations []m.QueryExpectation,
	options m.Options,
) (*CaseIndex, error) {
	parsed, err := ParseExpectations(expectations)
	if err != nil {
		return nil, fmt.Errorf("parse expectations: %w", err)
	}

	leaves, err := loader.LoadCases(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", root, err)
	}

	index := &CaseIndex{
		leaves:       make(map[string]*Leaf, len(leaves)),
		expectations: parsed,
		options:      options,
	}

	for _, leaf := range leaves {
		index.leaves[leaf.Query().String()] = leaf
	}

	slog.Info("Indexed cases", "root", root.String(), "count", len(index.leaves))

	return index, nil
}

// Len returns the number of indexed cases.
func (c *CaseIndex) Len() int {
	return len(c.leaves)
}

// RunCase runs the case called name. ok is false for unknown names.
func (c *CaseIndex) RunCase(ctx context.Context, name string) (result m.Result, ok bool) {
	leaf, ok := c.leaves[name]
	if !ok {
		return m.Result{}, false
	}

	logger := logging.NewLogger(c.options.Debug)
	leaf.Run(ctx, logger.Record(name), RunOptions{
		Debug:        logger.Debug(),
		Expectations: c.expectations,
		Options:      c.options,
	})

	result, _ = logger.Get(name)

	return result, true
}
