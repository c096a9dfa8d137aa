package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/cts/internal/adapter"
	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/query"
)

// RunArgs describe one run.
type RunArgs struct {
	// Queries select the cases. Duplicate cases are run once.
	Queries []query.Query
	// Filters keep only cases whose query string contains every filter.
	Filters      []string
	Expectations []m.QueryExpectation
	Options      m.Options
	// Parallel bounds concurrently running cases. Zero means unbounded.
	Parallel uint
	// Timeout bounds each case. Zero means no timeout.
	Timeout         time.Duration
	ShardIndex      uint
	TotalShardCount uint
	// Executor, when set, overrides the runner's executor for this run.
	Executor adapter.CaseExecutor
	// ExpectationsPath names an expectations file merged into Expectations.
	ExpectationsPath string
	// WriteExpectationsPath, when set, receives a fail expectation for
	// every case that failed or warned.
	WriteExpectationsPath string
	// Verbose prints the results document after the summary.
	Verbose bool
}

// Runner plans and runs cases, publishing results to its logger.
type Runner interface {
	// Plan loads, deduplicates, filters and shards the cases of args.
	Plan(ctx context.Context, args RunArgs) ([]*Leaf, error)
	// RunLeaves runs planned cases and returns their results in order.
	RunLeaves(ctx context.Context, leaves []*Leaf, args RunArgs) ([]m.NamedResult, error)
	// Run is Plan followed by RunLeaves.
	Run(ctx context.Context, args RunArgs) ([]m.NamedResult, error)
}

// RunnerOption configures a Runner.
type RunnerOption func(*runner)

// WithRoot rejects queries that are not within root with ErrUnorderedQuery.
func WithRoot(root query.Query) RunnerOption {
	return func(r *runner) {
		r.root = root
	}
}

// WithExecutor runs cases through executor, typically a worker pool,
// instead of in process.
func WithExecutor(executor adapter.CaseExecutor) RunnerOption {
	return func(r *runner) {
		r.CaseExecutor = executor
	}
}

type runner struct {
	Loader
	adapter.CaseExecutor

	logger *logging.Logger
	root   query.Query
}

// NewRunner creates a Runner loading cases with loader and recording into logger.
func NewRunner(loader Loader, logger *logging.Logger, options ...RunnerOption) Runner {
	r := &runner{
		Loader: loader,
		logger: logger,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

func (r *runner) Plan(ctx context.Context, args RunArgs) ([]*Leaf, error) {
	var leaves []*Leaf

	seen := make(map[string]bool)

	for _, q := range args.Queries {
		if !r.root.IsZero() {
			switch query.Compare(q, r.root) {
			case query.Equal, query.StrictSubset:
			default:
				return nil, fmt.Errorf("%w: %s is not within %s", ErrUnorderedQuery, q, r.root)
			}
		}

		cases, err := r.LoadCases(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", q, err)
		}

		for _, leaf := range cases {
			name := leaf.Query().String()
			if seen[name] || !matchesFilters(name, args.Filters) {
				continue
			}

			seen[name] = true
			leaves = append(leaves, leaf)
		}
	}

	return ShardLeaves(leaves, args.ShardIndex, args.TotalShardCount), nil
}

func matchesFilters(name string, filters []string) bool {
	for _, f := range filters {
		if !strings.Contains(name, f) {
			return false
		}
	}

	return true
}

// ShardLeaves keeps every TotalShardCount-th leaf starting at shardIndex.
func ShardLeaves(leaves []*Leaf, shardIndex, totalShardCount uint) []*Leaf {
	if totalShardCount == 0 {
		return leaves
	}

	var shard []*Leaf

	for i, leaf := range leaves {
		if uint(i)%totalShardCount == shardIndex {
			shard = append(shard, leaf)
		}
	}

	return shard
}

func (r *runner) Run(ctx context.Context, args RunArgs) ([]m.NamedResult, error) {
	leaves, err := r.Plan(ctx, args)
	if err != nil {
		return nil, err
	}

	return r.RunLeaves(ctx, leaves, args)
}

func (r *runner) RunLeaves(ctx context.Context, leaves []*Leaf, args RunArgs) ([]m.NamedResult, error) {
	expectations, err := ParseExpectations(args.Expectations)
	if err != nil {
		return nil, fmt.Errorf("parse expectations: %w", err)
	}

	// Record in tree order so results come out in a stable order.
	recorders := make([]*logging.Recorder, len(leaves))
	for i, leaf := range leaves {
		recorders[i] = r.logger.Record(leaf.Query().String())
	}

	slog.Debug("Running cases", "count", len(leaves), "parallel", args.Parallel, "worker", r.CaseExecutor != nil || args.Executor != nil)

	var group errgroup.Group
	if args.Parallel > 0 {
		group.SetLimit(int(args.Parallel))
	}

	for i, leaf := range leaves {
		group.Go(func() error {
			r.runLeaf(ctx, leaf, recorders[i], expectations, args)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	results := make([]m.NamedResult, len(leaves))

	for i, leaf := range leaves {
		name := leaf.Query().String()
		res, _ := r.logger.Get(name)
		results[i] = m.NamedResult{Query: name, Result: res}
	}

	return results, nil
}

func (r *runner) runLeaf(
	ctx context.Context,
	leaf *Leaf,
	rec *logging.Recorder,
	expectations []Expectation,
	args RunArgs,
) {
	if args.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, args.Timeout)
		defer cancel()
	}

	executor := r.CaseExecutor
	if args.Executor != nil {
		executor = args.Executor
	}

	if executor == nil {
		leaf.Run(ctx, rec, RunOptions{
			Debug:        r.logger.Debug(),
			Expectations: expectations,
			Options:      args.Options,
		})

		return
	}

	options := args.Options
	options.Debug = r.logger.Debug()

	result, err := executor.Execute(ctx, m.WorkerRequest{
		Query:        leaf.Query().String(),
		Expectations: args.Expectations,
		Options:      options,
	})
	if err != nil {
		slog.Error("Worker failed to run case", "query", leaf.Query().String(), "error", err)
		rec.Abort(fmt.Errorf("worker: %w", err))

		return
	}

	rec.InjectResult(result)
}
