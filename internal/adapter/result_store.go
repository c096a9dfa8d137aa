package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	// SQLite driver.
	_ "modernc.org/sqlite"

	m "gooze.dev/pkg/cts/internal/model"
)

// ErrRunNotFound is returned when no stored run matches an id.
var ErrRunNotFound = errors.New("run not found")

// ResultStore keeps the results of past runs.
type ResultStore interface {
	SaveRun(ctx context.Context, startedAt time.Time, queries []string, results []m.NamedResult) (string, error)
	ListRuns(ctx context.Context, limit int) ([]m.RunInfo, error)
	// LoadRun accepts a full run id or a unique prefix of one.
	LoadRun(ctx context.Context, id string) (m.RunInfo, []m.NamedResult, error)
	Close() error
}

// SQLiteResultStore is a ResultStore backed by a SQLite database.
type SQLiteResultStore struct {
	db *sql.DB
}

var resultStoreMigrations = []string{
	`CREATE TABLE runs (
    id          TEXT PRIMARY KEY,
    started_at  TEXT NOT NULL,
    queries     TEXT NOT NULL,
    total       INTEGER NOT NULL,
    passed      INTEGER NOT NULL,
    skipped     INTEGER NOT NULL,
    warned      INTEGER NOT NULL,
    failed      INTEGER NOT NULL
);
CREATE TABLE results (
    run_id  TEXT NOT NULL REFERENCES runs(id),
    seq     INTEGER NOT NULL,
    query   TEXT NOT NULL,
    status  TEXT NOT NULL,
    timems  REAL NOT NULL,
    logs    BLOB,
    PRIMARY KEY (run_id, seq)
);
CREATE INDEX idx_runs_started_at ON runs(started_at);`,
}

// OpenSQLiteResultStore opens or creates the database at path. Use
// ":memory:" for a private in-memory database.
func OpenSQLiteResultStore(path string) (*SQLiteResultStore, error) {
	dsn := "file::memory:"

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create result store directory: %w", err)
		}

		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}

	db.SetMaxOpenConns(1)

	store := &SQLiteResultStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate result store: %w", err)
	}

	return store, nil
}

func (s *SQLiteResultStore) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`); err != nil {
		return err
	}

	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return err
	}

	for i, stmt := range resultStoreMigrations {
		version := i + 1
		if version <= current {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", version, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

// SaveRun stores results under a new run id and returns it.
func (s *SQLiteResultStore) SaveRun(
	ctx context.Context,
	startedAt time.Time,
	queries []string,
	results []m.NamedResult,
) (string, error) {
	id := uuid.NewString()
	summary := m.Summarize(results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}

	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, queries, total, passed, skipped, warned, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, startedAt.UTC().Format(time.RFC3339Nano), strings.Join(queries, "\n"),
		summary.Total, summary.Passed, summary.Skipped, summary.Warned, summary.Failed)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, seq, query, status, timems, logs) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}

	defer func() { _ = stmt.Close() }()

	for i, r := range results {
		logs, err := msgpack.Marshal(r.Result.Logs)
		if err != nil {
			return "", fmt.Errorf("encode logs of %s: %w", r.Query, err)
		}

		if _, err := stmt.ExecContext(ctx, id, i, r.Query, string(r.Result.Status), r.Result.TimeMS, logs); err != nil {
			return "", fmt.Errorf("insert result %s: %w", r.Query, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return id, nil
}

// ListRuns returns the most recent runs first.
func (s *SQLiteResultStore) ListRuns(ctx context.Context, limit int) ([]m.RunInfo, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, queries, total, passed, skipped, warned, failed
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	defer func() { _ = rows.Close() }()

	var runs []m.RunInfo

	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (m.RunInfo, error) {
	var (
		run       m.RunInfo
		startedAt string
		queries   string
	)

	err := row.Scan(&run.ID, &startedAt, &queries,
		&run.Summary.Total, &run.Summary.Passed, &run.Summary.Skipped, &run.Summary.Warned, &run.Summary.Failed)
	if err != nil {
		return m.RunInfo{}, err
	}

	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return m.RunInfo{}, fmt.Errorf("parse started_at of run %s: %w", run.ID, err)
	}

	if queries != "" {
		run.Queries = strings.Split(queries, "\n")
	}

	return run, nil
}

// LoadRun returns a run and its results in stored order.
func (s *SQLiteResultStore) LoadRun(ctx context.Context, id string) (m.RunInfo, []m.NamedResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, queries, total, passed, skipped, warned, failed
		FROM runs WHERE id LIKE ? || '%' LIMIT 2`, id)
	if err != nil {
		return m.RunInfo{}, nil, err
	}

	var matches []m.RunInfo

	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			_ = rows.Close()
			return m.RunInfo{}, nil, err
		}

		matches = append(matches, run)
	}

	_ = rows.Close()

	switch {
	case id == "" || len(matches) == 0:
		return m.RunInfo{}, nil, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	case len(matches) > 1:
		return m.RunInfo{}, nil, fmt.Errorf("run id prefix %q is ambiguous", id)
	}

	run := matches[0]

	results, err := s.loadResults(ctx, run.ID)
	if err != nil {
		return m.RunInfo{}, nil, err
	}

	return run, results, nil
}

func (s *SQLiteResultStore) loadResults(ctx context.Context, runID string) ([]m.NamedResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, status, timems, logs FROM results WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}

	defer func() { _ = rows.Close() }()

	var results []m.NamedResult

	for rows.Next() {
		var (
			r      m.NamedResult
			status string
			logs   []byte
		)

		if err := rows.Scan(&r.Query, &status, &r.Result.TimeMS, &logs); err != nil {
			return nil, err
		}

		r.Result.Status = m.Status(status)

		if len(logs) > 0 {
			if err := msgpack.Unmarshal(logs, &r.Result.Logs); err != nil {
				return nil, fmt.Errorf("decode logs of %s: %w", r.Query, err)
			}
		}

		results = append(results, r)
	}

	return results, rows.Err()
}

// Close closes the database.
func (s *SQLiteResultStore) Close() error {
	return s.db.Close()
}

// ErrResultStoreDisabled is returned by a LazyResultStore with no path.
var ErrResultStoreDisabled = errors.New("result store disabled")

// LazyResultStore opens a SQLiteResultStore on first use, at the path
// returned by path at that time. An empty path disables the store.
type LazyResultStore struct {
	path func() string

	mu    sync.Mutex
	store *SQLiteResultStore
}

// NewLazyResultStore creates a LazyResultStore.
func NewLazyResultStore(path func() string) *LazyResultStore {
	return &LazyResultStore{path: path}
}

func (s *LazyResultStore) open() (*SQLiteResultStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		return s.store, nil
	}

	path := strings.TrimSpace(s.path())
	if path == "" {
		return nil, ErrResultStoreDisabled
	}

	store, err := OpenSQLiteResultStore(path)
	if err != nil {
		return nil, err
	}

	s.store = store

	return store, nil
}

// SaveRun implements ResultStore.
func (s *LazyResultStore) SaveRun(ctx context.Context, startedAt time.Time, queries []string, results []m.NamedResult) (string, error) {
	store, err := s.open()
	if err != nil {
		return "", err
	}

	return store.SaveRun(ctx, startedAt, queries, results)
}

// ListRuns implements ResultStore.
func (s *LazyResultStore) ListRuns(ctx context.Context, limit int) ([]m.RunInfo, error) {
	store, err := s.open()
	if err != nil {
		return nil, err
	}

	return store.ListRuns(ctx, limit)
}

// LoadRun implements ResultStore.
func (s *LazyResultStore) LoadRun(ctx context.Context, id string) (m.RunInfo, []m.NamedResult, error) {
	store, err := s.open()
	if err != nil {
		return m.RunInfo{}, nil, err
	}

	return store.LoadRun(ctx, id)
}

// Close closes the underlying store if it was opened.
func (s *LazyResultStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil
	}

	err := s.store.Close()
	s.store = nil

	return err
}
