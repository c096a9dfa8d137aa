package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

// ErrCaseNotFound is returned by RunCase when name selects no single case.
var ErrCaseNotFound = errors.New("test case not found")

// RunCase runs the one case named by a SingleCase query string, as a
// worker process or the HTTP driver does, and returns its result.
func RunCase(
	ctx context.Context,
	loader Loader,
	name string,
	expectations []m.QueryExpectation,
	options m.Options,
) (m.Result, error) {
	q, err := query.Parse(name)
	if err != nil {
		return m.Result{}, err
	}

	if q.Level() != query.LevelSingleCase {
		return m.Result{}, fmt.Errorf("%w: %s", ErrCaseNotFound, name)
	}

	leaves, err := loader.LoadCases(ctx, q)
	if err != nil || len(leaves) != 1 {
		slog.Debug("Case lookup failed", "query", name, "cases", len(leaves), "error", err)
		return m.Result{}, fmt.Errorf("%w: %s", ErrCaseNotFound, name)
	}

	parsed, err := ParseExpectations(expectations)
	if err != nil {
		return m.Result{}, fmt.Errorf("parse expectations: %w", err)
	}

	logger := logging.NewLogger(options.Debug)
	rec := logger.Record(leaves[0].Query().String())
	leaves[0].Run(ctx, rec, RunOptions{Debug: logger.Debug(), Expectations: parsed, Options: options})

	result, _ := logger.Get(leaves[0].Query().String())

	return result, nil
}

// NewWorkerHandler answers worker requests by running the named case
// with RunCase.
func NewWorkerHandler(loader Loader) adapter.WorkerHandler {
	return func(ctx context.Context, req m.WorkerRequest) m.WorkerResponse {
		result, err := RunCase(ctx, loader, req.Query, req.Expectations, req.Options)
		if err != nil {
			slog.Error("Worker failed to run case", "query", req.Query, "error", err)
			return m.WorkerResponse{Query: req.Query, Error: err.Error()}
		}

		return m.WorkerResponse{Query: req.Query, Result: result}
	}
}
