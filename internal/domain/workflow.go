package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/controller"
	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

// ErrNoResultStore is returned by history commands when runs are not stored.
var ErrNoResultStore = errors.New("result store disabled")

// ListArgs describe a listing of cases or trees.
type ListArgs struct {
	Queries []query.Query
	Filters []string
	// Tree prints the loaded tree of each query instead of its cases.
	Tree bool
}

// VariantsArgs describe a minimal query list computation.
type VariantsArgs struct {
	Root             query.Query
	Expectations     []m.QueryExpectation
	ExpectationsPath string
	// Level is expanded through even where no expectation asks for it.
	Level query.Level
}

// DiffArgs name two stored runs by id or unique id prefix.
type DiffArgs struct {
	From string
	To   string
}

// Workflow drives the cts commands on top of the loader, the stores and a UI.
type Workflow interface {
	// Run plans and runs cases, displays them and stores the results.
	Run(ctx context.Context, args RunArgs) (m.Summary, error)
	// List prints the cases or trees selected by queries.
	List(ctx context.Context, args ListArgs) error
	// Variants prints the minimal query list covering a root query.
	Variants(ctx context.Context, args VariantsArgs) error
	// History prints the most recent stored runs.
	History(ctx context.Context, limit int) error
	// Diff prints the status changes between two stored runs.
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	Loader
	adapter.ExpectationStore
	controller.UI

	results       adapter.ResultStore
	runnerOptions []RunnerOption
}

// NewWorkflow creates a Workflow. results may be nil to disable run history.
func NewWorkflow(
	loader Loader,
	expectations adapter.ExpectationStore,
	results adapter.ResultStore,
	ui controller.UI,
	options ...RunnerOption,
) Workflow {
	return &workflow{
		Loader:           loader,
		ExpectationStore: expectations,
		UI:               ui,
		results:          results,
		runnerOptions:    options,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.Summary, error) {
	startedAt := time.Now()

	expectations, err := w.expectations(args.Expectations, args.ExpectationsPath)
	if err != nil {
		return m.Summary{}, err
	}

	args.Expectations = expectations

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.Summary{}, err
	}
	defer w.Close(ctx)

	logger := logging.NewLogger(args.Options.Debug)
	unsubscribe := logger.Subscribe(func(r m.NamedResult) {
		if r.Result.Status == m.StatusRunning {
			w.DisplayStartingCase(ctx, r.Query)
			return
		}

		w.DisplayCompletedCase(ctx, r)
	})

	defer unsubscribe()

	runner := NewRunner(w.Loader, logger, w.runnerOptions...)

	leaves, err := runner.Plan(ctx, args)
	if err != nil {
		slog.Error("Failed to plan run", "error", err)
		return m.Summary{}, err
	}

	if len(leaves) == 0 {
		return m.Summary{}, fmt.Errorf("%w: nothing left after filters and sharding", ErrNoMatchingCases)
	}

	w.DisplayConcurrencyInfo(ctx, int(args.Parallel), int(args.ShardIndex), int(max(args.TotalShardCount, 1)), len(leaves))

	results, err := runner.RunLeaves(ctx, leaves, args)
	if err != nil {
		slog.Error("Failed to run cases", "error", err)
		return m.Summary{}, err
	}

	w.DisplaySummary(ctx, results)

	if args.Verbose {
		data, err := logger.JSON()
		if err != nil {
			return m.Summary{}, fmt.Errorf("encode results: %w", err)
		}

		w.DisplayResultsJSON(ctx, data)
	}

	if args.WriteExpectationsPath != "" {
		if err := w.SaveExpectations(args.WriteExpectationsPath, failingExpectations(results)); err != nil {
			slog.Error("Failed to write expectations", "path", args.WriteExpectationsPath, "error", err)
			return m.Summary{}, fmt.Errorf("write expectations: %w", err)
		}
	}

	if w.results != nil {
		id, err := w.results.SaveRun(ctx, startedAt, queryStrings(args.Queries), results)

		switch {
		case errors.Is(err, adapter.ErrResultStoreDisabled):
			slog.Debug("Run not stored, result store disabled")
		case err != nil:
			slog.Error("Failed to store run", "error", err)
			return m.Summary{}, fmt.Errorf("store run: %w", err)
		default:
			w.DisplayRunSaved(ctx, id)
		}
	}

	w.Wait(ctx)

	return m.Summarize(results), nil
}

func (w *workflow) expectations(inline []m.QueryExpectation, path string) ([]m.QueryExpectation, error) {
	if path == "" {
		return inline, nil
	}

	loaded, err := w.LoadExpectations(path)
	if err != nil {
		slog.Error("Failed to load expectations", "path", path, "error", err)
		return nil, fmt.Errorf("load expectations: %w", err)
	}

	return append(append([]m.QueryExpectation{}, inline...), loaded...), nil
}

func failingExpectations(results []m.NamedResult) []m.QueryExpectation {
	var out []m.QueryExpectation

	for _, r := range results {
		if r.Result.Status.Failed() {
			out = append(out, m.QueryExpectation{Query: r.Query, Expectation: m.ExpectFail})
		}
	}

	return out
}

func queryStrings(queries []query.Query) []string {
	out := make([]string, len(queries))
	for i, q := range queries {
		out[i] = q.String()
	}

	return out
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if args.Tree {
		for _, q := range args.Queries {
			tree, err := w.LoadTree(ctx, q, nil)
			if err != nil {
				slog.Error("Failed to load tree", "query", q.String(), "error", err)
				return fmt.Errorf("load %s: %w", q, err)
			}

			w.DisplayTree(ctx, tree.String())
		}

		w.Wait(ctx)

		return nil
	}

	leaves, err := NewRunner(w.Loader, logging.NewLogger(false), w.runnerOptions...).Plan(ctx, RunArgs{
		Queries: args.Queries,
		Filters: args.Filters,
	})
	if err != nil {
		slog.Error("Failed to list cases", "error", err)
		return err
	}

	names := make([]string, len(leaves))
	for i, leaf := range leaves {
		names[i] = leaf.Query().String()
	}

	w.DisplayQueries(ctx, names)
	w.Wait(ctx)

	return nil
}

func (w *workflow) Variants(ctx context.Context, args VariantsArgs) error {
	expectations, err := w.expectations(args.Expectations, args.ExpectationsPath)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	level := args.Level
	if level == 0 {
		level = query.LevelMultiFile
	}

	queries, err := MinimalQueries(ctx, w.Loader, args.Root, expectations, level)
	if err != nil {
		slog.Error("Failed to compute variants", "root", args.Root.String(), "error", err)
		return err
	}

	w.DisplayQueries(ctx, queryStrings(queries))
	w.Wait(ctx)

	return nil
}

func (w *workflow) History(ctx context.Context, limit int) error {
	if w.results == nil {
		return ErrNoResultStore
	}

	runs, err := w.results.ListRuns(ctx, limit)
	if err != nil {
		slog.Error("Failed to list runs", "error", err)
		return fmt.Errorf("list runs: %w", err)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayRuns(ctx, runs)
	w.Wait(ctx)

	return nil
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	if w.results == nil {
		return ErrNoResultStore
	}

	fromInfo, from, err := w.results.LoadRun(ctx, args.From)
	if err != nil {
		return fmt.Errorf("load run %s: %w", args.From, err)
	}

	toInfo, to, err := w.results.LoadRun(ctx, args.To)
	if err != nil {
		return fmt.Errorf("load run %s: %w", args.To, err)
	}

	diff, err := DiffResults(fromInfo.ID, from, toInfo.ID, to)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayDiff(ctx, diff)
	w.Wait(ctx)

	return nil
}
