// Package logging records per-case logs and results and publishes them to
// a Logger that observers can subscribe to.
package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	m "gooze.dev/pkg/cts/internal/model"
)

type severity int

const (
	sevPass severity = iota
	sevSkip
	sevWarn
	sevExpectFailed
	sevValidationFailed
	sevThrewException
)

const (
	maxLogStacks        = 2
	minSeverityForStack = sevWarn
)

// ErrUnexpectedPass is logged when a case expected to fail passes.
var ErrUnexpectedPass = errors.New("unexpected pass")

// SkipError ends a case early with status skip.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return e.Reason
}

// Skip returns a *SkipError with the given reason.
func Skip(format string, args ...any) error {
	return &SkipError{Reason: fmt.Sprintf(format, args...)}
}

// Recorder accumulates the log of one case and publishes its result once
// on Finish. Its methods are safe for concurrent use.
type Recorder struct {
	mu sync.Mutex

	name    string
	publish func(m.NamedResult)
	now     func() time.Time

	debugging       bool
	finalStatus     severity
	inSubCase       bool
	subCaseStatus   severity
	hideStacksBelow severity
	linesAtSeverity int
	logs            []*m.LogMessage

	startTime time.Time
	started   bool
	finished  bool
}

// NewRecorder returns a recorder that calls publish with the final result.
// Logger.Record is the usual way to obtain one.
func NewRecorder(name string, publish func(m.NamedResult)) *Recorder {
	return &Recorder{
		name:            name,
		publish:         publish,
		now:             time.Now,
		hideStacksBelow: minSeverityForStack,
	}
}

// Name returns the query string the recorder belongs to.
func (r *Recorder) Name() string {
	return r.name
}

// Start begins timing. Debug entries are kept only when debug is true.
func (r *Recorder) Start(debug bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		panic("logging: Recorder cannot be reused")
	}

	r.started = true
	r.debugging = debug
	r.logs = nil
	r.startTime = r.now()
}

// Finish computes the result and publishes it.
func (r *Recorder) Finish() {
	r.mu.Lock()

	if !r.started {
		r.mu.Unlock()
		panic("logging: Finish() before Start()")
	}

	if r.finished {
		r.mu.Unlock()
		return
	}

	r.finished = true

	elapsed := float64(r.now().Sub(r.startTime).Nanoseconds()) / float64(time.Millisecond)
	result := m.Result{
		Status: r.finalStatus.status(),
		// Round up to the next microsecond.
		TimeMS: math.Ceil(elapsed*1000) / 1000,
		Logs:   make([]m.LogMessage, len(r.logs)),
	}

	for i, l := range r.logs {
		result.Logs[i] = *l
	}

	r.mu.Unlock()

	r.publish(m.NamedResult{Query: r.name, Result: result})
}

// InjectResult publishes a result produced elsewhere, for example by a
// worker process, in place of this recorder's own.
func (r *Recorder) InjectResult(result m.Result) {
	r.mu.Lock()

	if r.finished {
		r.mu.Unlock()
		return
	}

	r.started = true
	r.finished = true
	r.mu.Unlock()

	r.publish(m.NamedResult{Query: r.name, Result: result})
}

// BeginSubCase starts tracking a status separately from the case status.
func (r *Recorder) BeginSubCase() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inSubCase = true
	r.subCaseStatus = sevPass
}

// EndSubCase folds the subcase status into the case status. When expected
// is fail the outcome is inverted: a failure passes and a pass fails.
func (r *Recorder) EndSubCase(expected m.Expectation) {
	r.mu.Lock()

	unexpectedPass := false

	if expected == m.ExpectFail {
		if r.subCaseStatus <= sevWarn {
			unexpectedPass = true
		} else {
			r.subCaseStatus = sevPass
		}
	}

	r.inSubCase = false
	r.finalStatus = max(r.finalStatus, r.subCaseStatus)
	r.mu.Unlock()

	if unexpectedPass {
		r.Threw(ErrUnexpectedPass)
	}
}

// Debug logs msg if the recorder was started in debug mode.
func (r *Recorder) Debug(msg string) {
	r.mu.Lock()
	debugging := r.debugging
	r.mu.Unlock()

	if !debugging {
		return
	}

	r.log(sevPass, "DEBUG", msg, "")
}

// Info logs msg without affecting the status.
func (r *Recorder) Info(msg string) {
	r.log(sevPass, "INFO", msg, "")
}

// Skipped marks the case skipped.
func (r *Recorder) Skipped(err error) {
	r.log(sevSkip, "SKIP", err.Error(), stackOf(err))
}

// Warn marks the case as passing with a warning.
func (r *Recorder) Warn(err error) {
	r.log(sevWarn, "WARN", err.Error(), stackOf(err))
}

// ExpectationFailed records a failed check.
func (r *Recorder) ExpectationFailed(err error) {
	r.log(sevExpectFailed, "EXPECTATION FAILED", err.Error(), stackOf(err))
}

// ValidationFailed records an unexpected validation error.
func (r *Recorder) ValidationFailed(err error) {
	r.log(sevValidationFailed, "VALIDATION FAILED", err.Error(), stackOf(err))
}

// Threw records an error that ended the case. A *SkipError is recorded as
// a skip instead.
func (r *Recorder) Threw(err error) {
	var skip *SkipError
	if errors.As(err, &skip) {
		r.Skipped(err)
		return
	}

	r.log(sevThrewException, "EXCEPTION", err.Error(), stackOf(err))
}

// Abort records err as a case-level exception, whether or not a subcase
// is open, and finishes the recorder. Later calls from the abandoned case
// body are dropped.
func (r *Recorder) Abort(err error) {
	r.mu.Lock()

	if !r.started {
		r.started = true
		r.startTime = r.now()
	}

	r.inSubCase = false
	r.appendLocked(sevThrewException, "EXCEPTION", err.Error(), stackOf(err))
	r.mu.Unlock()

	r.Finish()
}

func (r *Recorder) log(level severity, name, message, stack string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendLocked(level, name, message, stack)
}

func (r *Recorder) appendLocked(level severity, name, message, stack string) {
	if r.finished {
		slog.Debug("Dropping log after finish", "case", r.name, "name", name, "message", message)
		return
	}

	entry := &m.LogMessage{Name: name, Message: message, Stack: stack}

	if r.inSubCase {
		r.subCaseStatus = max(r.subCaseStatus, level)
	} else {
		r.finalStatus = max(r.finalStatus, level)
	}

	// Only the first few entries at the highest severity keep their stacks.
	if level > r.hideStacksBelow {
		r.linesAtSeverity = 0
		r.hideStacksBelow = level

		for _, l := range r.logs {
			if !l.StackHidden {
				l.HideStack("below max severity")
			}
		}
	}

	switch {
	case level == r.hideStacksBelow:
		r.linesAtSeverity++
	case level < minSeverityForStack:
		entry.HideStack("")
	case level < r.hideStacksBelow:
		entry.HideStack("below max severity")
	}

	if r.linesAtSeverity > maxLogStacks && !entry.StackHidden {
		entry.HideStack(fmt.Sprintf("only %d shown", maxLogStacks))
	}

	r.logs = append(r.logs, entry)
}

func (s severity) status() m.Status {
	switch s {
	case sevPass:
		return m.StatusPass
	case sevSkip:
		return m.StatusSkip
	case sevWarn:
		return m.StatusWarn
	default:
		return m.StatusFail
	}
}
