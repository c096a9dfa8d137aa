package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	m "gooze.dev/pkg/cts/internal/model"
)

// ErrPoolClosed is returned by Execute after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// ErrNoWorkers is returned by Execute once every worker died and none
// could be restarted.
var ErrNoWorkers = errors.New("no workers left")

// CaseExecutor runs a single case somewhere other than the calling
// goroutine and returns its result.
type CaseExecutor interface {
	Execute(ctx context.Context, req m.WorkerRequest) (m.Result, error)
}

// WorkerCommand describes how to start a worker process.
type WorkerCommand struct {
	Path string
	Args []string
	Env  []string
}

// WorkerPool runs cases in long-lived worker processes speaking msgpack
// over stdin and stdout. Each process runs one case at a time.
type WorkerPool struct {
	command WorkerCommand
	idle    chan *workerProcess

	mu         sync.Mutex
	procs      map[*workerProcess]bool
	restarting int
	closed     bool

	drained   chan struct{}
	drainOnce sync.Once
}

type workerProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	enc   *msgpack.Encoder
	dec   *msgpack.Decoder
}

// NewWorkerPool starts size worker processes.
func NewWorkerPool(ctx context.Context, size int, command WorkerCommand) (*WorkerPool, error) {
	if size < 1 {
		size = 1
	}

	pool := &WorkerPool{
		command: command,
		idle:    make(chan *workerProcess, size),
		procs:   make(map[*workerProcess]bool),
		drained: make(chan struct{}),
	}

	var group errgroup.Group

	for range size {
		group.Go(func() error {
			w, err := pool.spawn(ctx)
			if err != nil {
				return err
			}

			pool.idle <- w

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("start workers: %w", err)
	}

	slog.Debug("Worker pool started", "size", size, "command", command.Path)

	return pool, nil
}

func (p *WorkerPool) spawn(ctx context.Context) (*workerProcess, error) {
	// #nosec G204 - the worker command is this binary or a configured one
	cmd := exec.CommandContext(context.WithoutCancel(ctx), p.command.Path, p.command.Args...)
	cmd.Env = append(os.Environ(), p.command.Env...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.command.Path, err)
	}

	w := &workerProcess{
		cmd:   cmd,
		stdin: stdin,
		enc:   msgpack.NewEncoder(stdin),
		dec:   msgpack.NewDecoder(bufio.NewReader(stdout)),
	}

	p.mu.Lock()
	p.procs[w] = true
	p.mu.Unlock()

	return w, nil
}

// Execute sends req to an idle worker and waits for its response. When
// ctx ends first the worker is killed and replaced.
func (p *WorkerPool) Execute(ctx context.Context, req m.WorkerRequest) (m.Result, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()

	if closed {
		return m.Result{}, ErrPoolClosed
	}

	var w *workerProcess

	select {
	case w = <-p.idle:
	case <-p.drained:
		return m.Result{}, ErrNoWorkers
	case <-ctx.Done():
		return m.Result{}, ctx.Err()
	}

	type reply struct {
		resp m.WorkerResponse
		err  error
	}

	done := make(chan reply, 1)

	go func() {
		var r reply

		if r.err = w.enc.Encode(&req); r.err == nil {
			r.err = w.dec.Decode(&r.resp)
		}

		done <- r
	}()

	select {
	case r := <-done:
		if r.err != nil {
			p.replace(ctx, w)
			return m.Result{}, fmt.Errorf("worker exchange: %w", r.err)
		}

		p.idle <- w

		if r.resp.Error != "" {
			return m.Result{}, errors.New(r.resp.Error)
		}

		return r.resp.Result, nil
	case <-ctx.Done():
		p.replace(ctx, w)
		return m.Result{}, ctx.Err()
	}
}

// replace kills w and puts a fresh worker in its place. When the last
// worker cannot be restarted, waiting callers get ErrNoWorkers.
func (p *WorkerPool) replace(ctx context.Context, w *workerProcess) {
	p.mu.Lock()
	p.restarting++
	p.mu.Unlock()

	p.stop(w, true)

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()

	var (
		fresh *workerProcess
		err   error
	)

	if !closed {
		fresh, err = p.spawn(ctx)
	}

	p.mu.Lock()
	p.restarting--
	empty := len(p.procs) == 0 && p.restarting == 0
	p.mu.Unlock()

	switch {
	case closed:
		return
	case err != nil:
		slog.Error("Failed to restart worker", "error", err)

		if empty {
			p.drainOnce.Do(func() { close(p.drained) })
		}

		return
	}

	p.idle <- fresh
}

func (p *WorkerPool) stop(w *workerProcess, kill bool) {
	p.mu.Lock()
	delete(p.procs, w)
	p.mu.Unlock()

	_ = w.stdin.Close()

	if kill && w.cmd.Process != nil {
		_ = w.cmd.Process.Kill()
	}

	_ = w.cmd.Wait()
}

// Close stops every worker. Workers exit when their stdin closes.
func (p *WorkerPool) Close() error {
	p.mu.Lock()
	p.closed = true

	procs := make([]*workerProcess, 0, len(p.procs))
	for w := range p.procs {
		procs = append(procs, w)
	}
	p.mu.Unlock()

	for _, w := range procs {
		p.stop(w, false)
	}

	return nil
}

// WorkerHandler answers one worker request.
type WorkerHandler func(ctx context.Context, req m.WorkerRequest) m.WorkerResponse

// ServeWorker answers msgpack requests read from r on w until r is
// exhausted or ctx ends.
func ServeWorker(ctx context.Context, r io.Reader, w io.Writer, handle WorkerHandler) error {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	out := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req m.WorkerRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("decode request: %w", err)
		}

		resp := handle(ctx, req)
		resp.Query = req.Query

		if err := enc.Encode(&resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}

		if err := out.Flush(); err != nil {
			return err
		}
	}
}
