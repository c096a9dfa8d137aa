// Package model holds the plain data types shared across cts packages.
package model

import (
	"strings"
)

// Status is the externally visible outcome of a test case.
type Status string

// Case statuses. Running is only observed while a case executes.
const (
	StatusRunning Status = "running"
	StatusPass    Status = "pass"
	StatusSkip    Status = "skip"
	StatusWarn    Status = "warn"
	StatusFail    Status = "fail"
)

// Failed reports whether s should make a run exit non-zero.
func (s Status) Failed() bool {
	return s == StatusFail || s == StatusWarn
}

// LogMessage is one entry in a case log.
type LogMessage struct {
	Name    string `json:"name" msgpack:"name"`
	Message string `json:"message" msgpack:"message"`
	Stack   string `json:"stack,omitempty" msgpack:"stack,omitempty"`
	// StackHidden suppresses Stack when printing; HiddenReason, when set,
	// is printed in its place.
	StackHidden  bool   `json:"stackHidden,omitempty" msgpack:"stackHidden,omitempty"`
	HiddenReason string `json:"hiddenReason,omitempty" msgpack:"hiddenReason,omitempty"`
}

// HideStack elides the stack; an empty reason drops it silently.
func (l *LogMessage) HideStack(reason string) {
	l.StackHidden = true
	l.HiddenReason = reason
}

// String pretty-prints the entry as "NAME: message" plus its stack.
func (l LogMessage) String() string {
	var b strings.Builder

	b.WriteString(l.Name)

	if l.Message != "" {
		b.WriteString(": ")
		b.WriteString(l.Message)
	}

	switch {
	case !l.StackHidden && l.Stack != "":
		b.WriteString("\n")
		b.WriteString(l.Stack)
	case l.StackHidden && l.HiddenReason != "":
		b.WriteString("\n  at (elided: ")
		b.WriteString(l.HiddenReason)
		b.WriteString(")")
	}

	return b.String()
}

// Result is the record of one case execution.
type Result struct {
	Status Status       `json:"status" msgpack:"status"`
	TimeMS float64      `json:"timems" msgpack:"timems"`
	Logs   []LogMessage `json:"logs,omitempty" msgpack:"logs,omitempty"`
}

// PrettyLogs joins the pretty form of every log entry with newlines.
func (r Result) PrettyLogs() string {
	lines := make([]string, len(r.Logs))
	for i, l := range r.Logs {
		lines[i] = l.String()
	}

	return strings.Join(lines, "\n")
}

// NamedResult pairs a result with the query string it belongs to.
type NamedResult struct {
	Query  string `json:"query" msgpack:"query"`
	Result Result `json:"result" msgpack:"result"`
}

// Summary counts results per status.
type Summary struct {
	Total   int
	Passed  int
	Skipped int
	Warned  int
	Failed  int
}

// Summarize counts statuses across results.
func Summarize(results []NamedResult) Summary {
	s := Summary{Total: len(results)}

	for _, r := range results {
		switch r.Result.Status {
		case StatusPass:
			s.Passed++
		case StatusSkip:
			s.Skipped++
		case StatusWarn:
			s.Warned++
		case StatusFail:
			s.Failed++
		case StatusRunning:
		}
	}

	return s
}

// OK reports whether no case failed or warned.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Warned == 0
}
