package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/query"
)

// Expectation is a parsed expectation entry.
type Expectation struct {
	Query       query.Query
	Expectation m.Expectation
}

// ParseExpectations parses and validates expectation entries.
func ParseExpectations(entries []m.QueryExpectation) ([]Expectation, error) {
	out := make([]Expectation, 0, len(entries))

	for _, e := range entries {
		if !e.Expectation.Valid() {
			return nil, fmt.Errorf("expectation %q for %s: %w", e.Expectation, e.Query, ErrInvalidExpectation)
		}

		q, err := query.Parse(e.Query)
		if err != nil {
			return nil, fmt.Errorf("expectation query: %w", err)
		}

		out = append(out, Expectation{Query: q, Expectation: e.Expectation})
	}

	return out, nil
}

// ErrInvalidExpectation is returned for an expectation other than pass, fail or skip.
var ErrInvalidExpectation = errors.New("invalid expectation")

// ExpectationFor returns the expectation that applies to q: skip if any
// matching entry says skip, otherwise fail if any says fail, otherwise
// pass. An entry matches when its query equals or contains q.
func ExpectationFor(q query.Query, expectations []Expectation) m.Expectation {
	result := m.ExpectPass

	for _, e := range expectations {
		switch query.Compare(e.Query, q) {
		case query.Equal, query.StrictSuperset:
		default:
			continue
		}

		switch e.Expectation {
		case m.ExpectSkip:
			return m.ExpectSkip
		case m.ExpectFail:
			result = m.ExpectFail
		case m.ExpectPass:
		}
	}

	return result
}

// RunOptions configure a single case execution.
type RunOptions struct {
	Debug        bool
	Expectations []Expectation
	Options      m.Options
}

// Leaf is a runnable case: one record of a test's parameter space.
type Leaf struct {
	query  query.Query
	test   *TestBuilder
	params params.Params
}

// Query returns the SingleCase query of the leaf.
func (l *Leaf) Query() query.Query {
	return l.query
}

// Params returns the case params, private params included.
func (l *Leaf) Params() params.Params {
	return l.params
}

// Run executes the case and finishes rec. A context deadline or
// cancellation ends the case with a failure without waiting for the body.
func (l *Leaf) Run(ctx context.Context, rec *logging.Recorder, opts RunOptions) {
	rec.Start(opts.Debug)
	defer rec.Finish()

	if ExpectationFor(l.query, opts.Expectations) == m.ExpectSkip {
		rec.Skipped(errors.New("skipped by expectations"))
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		l.run(ctx, rec, opts)
	}()

	if abandoned(ctx, done) {
		slog.Debug("Abandoning case", "query", l.query.String(), "error", ctx.Err())
		rec.Abort(fmt.Errorf("%w: %w", ErrCaseTimeout, context.Cause(ctx)))
	}
}

// abandoned waits for done or the end of ctx. A body that finished by
// the time ctx ended is not abandoned.
func abandoned(ctx context.Context, done <-chan struct{}) bool {
	select {
	case <-done:
		return false
	case <-ctx.Done():
		select {
		case <-done:
			return false
		default:
			return true
		}
	}
}

func (l *Leaf) run(ctx context.Context, rec *logging.Recorder, opts RunOptions) {
	subcases := l.test.subcaseParams(l.params)
	if subcases == nil {
		l.runBody(ctx, rec, l.query, l.params, ExpectationFor(l.query, opts.Expectations), opts.Options)
		return
	}

	ran := 0
	skipped := 0

	for sub := range subcases {
		merged, err := params.Merge(l.params, sub)
		if err != nil {
			rec.Threw(fmt.Errorf("subcase params: %w", err))
			return
		}

		subQuery, err := query.New(query.LevelSingleCase, l.query.Suite(), l.query.File(), l.query.Test(), merged)
		if err != nil {
			rec.Threw(fmt.Errorf("subcase query: %w", err))
			return
		}

		ran++

		expected := ExpectationFor(subQuery, opts.Expectations)
		if expected == m.ExpectSkip {
			skipped++

			rec.Info(fmt.Sprintf("subcase %s skipped by expectations", sub.Public()))

			continue
		}

		l.runBody(ctx, rec, subQuery, merged, expected, opts.Options)

		if ctx.Err() != nil {
			return
		}
	}

	switch {
	case ran == 0:
		rec.Skipped(errors.New("no subcases"))
	case skipped == ran:
		rec.Skipped(errors.New("all subcases skipped by expectations"))
	}
}

// runBody runs the test body as one subcase of rec so that a fail
// expectation can invert its outcome.
func (l *Leaf) runBody(
	ctx context.Context,
	rec *logging.Recorder,
	q query.Query,
	p params.Params,
	expected m.Expectation,
	options m.Options,
) {
	rec.BeginSubCase()

	func() {
		defer func() {
			if r := recover(); r != nil {
				rec.Threw(&logging.PanicError{Value: r, Stack: string(debug.Stack())})
			}
		}()

		fixture := &Fixture{rec: rec, query: q, params: p, options: options}
		if err := l.test.fn(ctx, fixture); err != nil {
			rec.Threw(err)
		}
	}()

	rec.EndSubCase(expected)
}
