package logging

import (
	"encoding/json"
	"sync"

	m "gooze.dev/pkg/cts/internal/model"
)

// Subscriber receives every state change of a case: once when it starts
// running and once with its final result.
type Subscriber func(m.NamedResult)

// Logger owns the results of a run, keyed by query string, and notifies
// subscribers as results arrive. It is safe for concurrent use.
type Logger struct {
	mu sync.Mutex

	debug   bool
	order   []string
	results map[string]m.Result

	nextID      int
	subscribers map[int]Subscriber
	perName     map[string]map[int]Subscriber
}

// NewLogger returns an empty Logger. debug controls whether recorders keep
// debug entries.
func NewLogger(debug bool) *Logger {
	return &Logger{
		debug:       debug,
		results:     make(map[string]m.Result),
		subscribers: make(map[int]Subscriber),
		perName:     make(map[string]map[int]Subscriber),
	}
}

// Debug reports the logger's debug mode.
func (l *Logger) Debug() bool {
	return l.debug
}

// Record registers name as running and returns the recorder that will
// publish its result.
func (l *Logger) Record(name string) *Recorder {
	running := m.Result{Status: m.StatusRunning}

	l.mu.Lock()
	if _, seen := l.results[name]; !seen {
		l.order = append(l.order, name)
	}

	l.results[name] = running
	l.mu.Unlock()

	l.notify(m.NamedResult{Query: name, Result: running})

	return NewRecorder(name, l.Publish)
}

// Publish stores a final result and notifies subscribers.
func (l *Logger) Publish(r m.NamedResult) {
	l.mu.Lock()
	if _, seen := l.results[r.Query]; !seen {
		l.order = append(l.order, r.Query)
	}

	l.results[r.Query] = r.Result
	l.mu.Unlock()

	l.notify(r)
}

// Subscribe registers fn for every case. The returned func unsubscribes.
func (l *Logger) Subscribe(fn Subscriber) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		delete(l.subscribers, id)
	}
}

// SubscribeTo registers fn for a single query string.
func (l *Logger) SubscribeTo(name string, fn Subscriber) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++

	if l.perName[name] == nil {
		l.perName[name] = make(map[int]Subscriber)
	}

	l.perName[name][id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		delete(l.perName[name], id)
	}
}

func (l *Logger) notify(r m.NamedResult) {
	l.mu.Lock()
	targets := make([]Subscriber, 0, len(l.subscribers)+len(l.perName[r.Query]))

	for _, fn := range l.subscribers {
		targets = append(targets, fn)
	}

	for _, fn := range l.perName[r.Query] {
		targets = append(targets, fn)
	}
	l.mu.Unlock()

	for _, fn := range targets {
		fn(r)
	}
}

// Get returns the current result for name.
func (l *Logger) Get(name string) (m.Result, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.results[name]

	return r, ok
}

// Results returns every result in the order cases were first recorded.
func (l *Logger) Results() []m.NamedResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]m.NamedResult, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, m.NamedResult{Query: name, Result: l.results[name]})
	}

	return out
}

type jsonResult struct {
	Query  string   `json:"query"`
	Status m.Status `json:"status"`
	TimeMS float64  `json:"timems"`
	Logs   []string `json:"logs,omitempty"`
}

// JSON renders all results with pretty-printed log lines.
func (l *Logger) JSON() ([]byte, error) {
	results := l.Results()
	out := make([]jsonResult, len(results))

	for i, r := range results {
		out[i] = jsonResult{Query: r.Query, Status: r.Result.Status, TimeMS: r.Result.TimeMS}
		for _, log := range r.Result.Logs {
			out[i].Logs = append(out[i].Logs, log.String())
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
