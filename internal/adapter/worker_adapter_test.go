package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	m "gooze.dev/pkg/cts/internal/model"
)

const workerEnv = "CTS_TEST_WORKER_PROCESS"

// echoHandler passes cases whose query ends with ":" and fails the rest.
// Queries containing "hang" never answer and "crash" exits the process.
func echoHandler(_ context.Context, req m.WorkerRequest) m.WorkerResponse {
	switch {
	case strings.Contains(req.Query, "crash"):
		os.Exit(3)
	case strings.Contains(req.Query, "hang"):
		select {}
	case strings.Contains(req.Query, "error"):
		return m.WorkerResponse{Error: "cannot run " + req.Query}
	}

	status := m.StatusFail
	if strings.HasSuffix(req.Query, ":") {
		status = m.StatusPass
	}

	return m.WorkerResponse{Result: m.Result{
		Status: status,
		Logs:   []m.LogMessage{{Name: "INFO", Message: fmt.Sprintf("debug=%v", req.Options.Debug)}},
	}}
}

func TestWorkerProcess(t *testing.T) {
	if os.Getenv(workerEnv) != "1" {
		t.Skip("only runs as a worker subprocess")
	}

	err := ServeWorker(context.Background(), os.Stdin, os.Stdout, echoHandler)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(0)
}

func workerCommand() WorkerCommand {
	return WorkerCommand{
		Path: os.Args[0],
		Args: []string{"-test.run=^TestWorkerProcess$"},
		Env:  []string{workerEnv + "=1"},
	}
}

func TestServeWorker(t *testing.T) {
	var in bytes.Buffer

	enc := msgpack.NewEncoder(&in)
	require.NoError(t, enc.Encode(&m.WorkerRequest{Query: "s:a:", Options: m.Options{Debug: true}}))
	require.NoError(t, enc.Encode(&m.WorkerRequest{Query: "s:a:x=1"}))

	var out bytes.Buffer
	require.NoError(t, ServeWorker(context.Background(), &in, &out, echoHandler))

	dec := msgpack.NewDecoder(&out)

	var first, second m.WorkerResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "s:a:", first.Query)
	assert.Equal(t, m.StatusPass, first.Result.Status)
	assert.Equal(t, "debug=true", first.Result.Logs[0].Message)

	assert.Equal(t, "s:a:x=1", second.Query)
	assert.Equal(t, m.StatusFail, second.Result.Status)
}

func TestServeWorker_Garbage(t *testing.T) {
	err := ServeWorker(context.Background(), strings.NewReader("\xc1"), &bytes.Buffer{}, echoHandler)
	assert.Error(t, err)
}

func TestWorkerPool(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns processes")
	}

	ctx := context.Background()

	pool, err := NewWorkerPool(ctx, 2, workerCommand())
	require.NoError(t, err)

	defer func() { _ = pool.Close() }()

	var wg sync.WaitGroup

	for i := range 6 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			q := fmt.Sprintf("s:a:x=%d", i)

			res, err := pool.Execute(ctx, m.WorkerRequest{Query: q})
			assert.NoError(t, err)
			assert.Equal(t, m.StatusFail, res.Status, q)
		}()
	}

	wg.Wait()

	res, err := pool.Execute(ctx, m.WorkerRequest{Query: "s:a:", Options: m.Options{Debug: true}})
	require.NoError(t, err)
	assert.Equal(t, m.StatusPass, res.Status)
	assert.Equal(t, "debug=true", res.Logs[0].Message)

	_, err = pool.Execute(ctx, m.WorkerRequest{Query: "s:error:"})
	require.EqualError(t, err, "cannot run s:error:")
}

func TestWorkerPool_ReplacesBrokenWorkers(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns processes")
	}

	ctx := context.Background()

	pool, err := NewWorkerPool(ctx, 1, workerCommand())
	require.NoError(t, err)

	defer func() { _ = pool.Close() }()

	_, err = pool.Execute(ctx, m.WorkerRequest{Query: "s:crash:"})
	require.Error(t, err)

	timeout, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	_, err = pool.Execute(timeout, m.WorkerRequest{Query: "s:hang:"})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	res, err := pool.Execute(ctx, m.WorkerRequest{Query: "s:a:"})
	require.NoError(t, err)
	assert.Equal(t, m.StatusPass, res.Status)
}

func TestWorkerPool_NoWorkersLeft(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns processes")
	}

	ctx := context.Background()

	pool, err := NewWorkerPool(ctx, 1, workerCommand())
	require.NoError(t, err)

	defer func() { _ = pool.Close() }()

	pool.command.Path = "/nonexistent/cts-worker"

	_, err = pool.Execute(ctx, m.WorkerRequest{Query: "s:crash:"})
	require.Error(t, err)

	errs := make(chan error, 1)

	go func() {
		_, err := pool.Execute(ctx, m.WorkerRequest{Query: "s:a:"})
		errs <- err
	}()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, ErrNoWorkers)
	case <-time.After(3 * time.Second):
		t.Fatal("Execute blocked with no workers left")
	}
}

func TestWorkerPool_Closed(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns processes")
	}

	pool, err := NewWorkerPool(context.Background(), 1, workerCommand())
	require.NoError(t, err)
	require.NoError(t, pool.Close())

	_, err = pool.Execute(context.Background(), m.WorkerRequest{Query: "s:a:"})
	require.ErrorIs(t, err, ErrPoolClosed)
}

func TestNewWorkerPool_BadCommand(t *testing.T) {
	_, err := NewWorkerPool(context.Background(), 1, WorkerCommand{Path: "/nonexistent/cts-worker"})
	assert.Error(t, err)
}
