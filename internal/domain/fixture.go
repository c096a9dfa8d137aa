package domain

import (
	"errors"
	"fmt"

	"gooze.dev/pkg/cts/internal/logging"
	m "gooze.dev/pkg/cts/internal/model"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/query"
)

// Fixture is handed to a case body. It exposes the case params and logs
// into the case recorder.
type Fixture struct {
	rec     *logging.Recorder
	query   query.Query
	params  params.Params
	options m.Options
}

// Query returns the query of the running case, subcase params included.
func (t *Fixture) Query() query.Query {
	return t.query
}

// Params returns the case params, private params and subcase params included.
func (t *Fixture) Params() params.Params {
	return t.params
}

// Options returns the run-wide options.
func (t *Fixture) Options() m.Options {
	return t.options
}

// Debug logs a message kept only in debug mode.
func (t *Fixture) Debug(format string, args ...any) {
	t.rec.Debug(fmt.Sprintf(format, args...))
}

// Info logs a message.
func (t *Fixture) Info(format string, args ...any) {
	t.rec.Info(fmt.Sprintf(format, args...))
}

// Warn marks the case as passing with a warning.
func (t *Fixture) Warn(format string, args ...any) {
	t.rec.Warn(fmt.Errorf(format, args...))
}

// Fail records a failed expectation. The body keeps running.
func (t *Fixture) Fail(format string, args ...any) {
	t.rec.ExpectationFailed(fmt.Errorf(format, args...))
}

// Expect records a failure unless cond holds, and returns cond.
func (t *Fixture) Expect(cond bool, format string, args ...any) bool {
	if !cond {
		t.Fail(format, args...)
	}

	return cond
}

// ExpectOK records err as a failed expectation and reports whether it was nil.
func (t *Fixture) ExpectOK(err error) bool {
	if err != nil {
		t.rec.ExpectationFailed(err)
		return false
	}

	return true
}

// ExpectError records a failure unless err matches target.
func (t *Fixture) ExpectError(err, target error) bool {
	if !errors.Is(err, target) {
		t.Fail("expected error %v, got %v", target, err)
		return false
	}

	return true
}

// Skip returns an error that ends the body with status skip.
func (t *Fixture) Skip(format string, args ...any) error {
	return logging.Skip(format, args...)
}

// SkipIf returns a skip error when cond holds and nil otherwise.
func (t *Fixture) SkipIf(cond bool, format string, args ...any) error {
	if cond {
		return logging.Skip(format, args...)
	}

	return nil
}
