package unittests

import (
	"context"
	"errors"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/registry"
)

func init() {
	registry.Register(Suite, "logger", loggerSpec)
}

// recordOne runs body between Start and Finish of a fresh recorder and
// returns the published result.
func recordOne(debug bool, body func(rec *logging.Recorder)) m.Result {
	logger := logging.NewLogger(debug)
	rec := logger.Record("baz")

	rec.Start(debug)
	body(rec)
	rec.Finish()

	result, _ := logger.Get("baz")

	return result
}

func loggerSpec() *domain.SpecFile {
	g := domain.NewTestGroup()

	g.Test("construct").Fn(func(_ context.Context, t *domain.Fixture) error {
		logger := logging.NewLogger(false)
		logger.Record("a:foo,bar:baz:")
		logger.Record("a:foo,bar:qux:")

		results := logger.Results()
		if !t.Expect(len(results) == 2, "got %d results, want 2", len(results)) {
			return nil
		}

		for i, name := range []string{"a:foo,bar:baz:", "a:foo,bar:qux:"} {
			t.Expect(results[i].Query == name, "result %d is %s, want %s", i, results[i].Query, name)
			t.Expect(results[i].Result.Status == m.StatusRunning, "%s is %s, want running", name, results[i].Result.Status)
			t.Expect(len(results[i].Result.Logs) == 0, "%s has logs before starting", name)
		}

		return nil
	})

	g.Test("empty").Fn(func(_ context.Context, t *domain.Fixture) error {
		res := recordOne(false, func(*logging.Recorder) {})

		t.Expect(res.Status == m.StatusPass, "status %s, want pass", res.Status)
		t.Expect(res.TimeMS >= 0, "negative time %f", res.TimeMS)

		return nil
	})

	g.Test("pass").Fn(func(_ context.Context, t *domain.Fixture) error {
		res := recordOne(false, func(rec *logging.Recorder) { rec.Info("hello") })

		t.Expect(res.Status == m.StatusPass, "status %s, want pass", res.Status)

		return nil
	})

	g.Test("warn").Fn(func(_ context.Context, t *domain.Fixture) error {
		res := recordOne(false, func(rec *logging.Recorder) { rec.Warn(errors.New("careful")) })

		t.Expect(res.Status == m.StatusWarn, "status %s, want warn", res.Status)

		return nil
	})

	g.Test("fail").Fn(func(_ context.Context, t *domain.Fixture) error {
		res := recordOne(false, func(rec *logging.Recorder) {
			rec.ExpectationFailed(errors.New("bye"))
			rec.Warn(errors.New("later warning"))
		})

		t.Expect(res.Status == m.StatusFail, "status %s, want fail", res.Status)

		return nil
	})

	g.Test("skip").Fn(func(_ context.Context, t *domain.Fixture) error {
		res := recordOne(false, func(rec *logging.Recorder) { rec.Skipped(logging.Skip("not today")) })

		t.Expect(res.Status == m.StatusSkip, "status %s, want skip", res.Status)

		return nil
	})

	g.Test("debug").
		Desc("Debug messages are kept only when the recorder starts in debug mode.").
		Params(params.List(
			params.P("debug", true, "logsCount", 1),
			params.P("debug", false, "logsCount", 0),
		)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			p := t.Params()
			res := recordOne(p.Flag("debug"), func(rec *logging.Recorder) { rec.Debug("hello") })

			t.Expect(res.Status == m.StatusPass, "status %s, want pass", res.Status)
			t.Expect(len(res.Logs) == int(p.Number("logsCount")), "got %d logs, want %v", len(res.Logs), p.Number("logsCount"))

			return nil
		})

	return &domain.SpecFile{
		Description: "Unit tests for the result recorder and logger.",
		G:           g,
	}
}
