package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	m "gooze.dev/pkg/cts/internal/model"
)

// CaseRunner runs a single case by its full query string. ok is false
// when no such case exists.
type CaseRunner interface {
	RunCase(ctx context.Context, name string) (result m.Result, ok bool)
}

// RunResponse is the body answered to /run.
type RunResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const shutdownTimeout = 5 * time.Second

// Server exposes a CaseRunner over HTTP:
//
//	GET|POST /run?<query>   runs one case and answers a RunResponse
//	GET|POST /terminate     stops the server
type Server struct {
	runner CaseRunner
	out    io.Writer

	terminate chan struct{}
	once      sync.Once
}

// NewServer creates a Server announcing its port on out.
func NewServer(runner CaseRunner, out io.Writer) *Server {
	return &Server{
		runner:    runner,
		out:       out,
		terminate: make(chan struct{}),
	}
}

// Handler routes the RPC endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/run", s.handleRun)
	mux.HandleFunc("/terminate", s.handleTerminate)

	return mux
}

// ListenAndServe listens on addr, an empty port picks a free one.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		slog.Error("Failed to listen", "addr", addr, "error", err)
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	return s.Serve(ctx, listener)
}

// Serve answers requests on listener until /terminate is hit or ctx is done.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		_, _ = fmt.Fprintf(s.out, "Server listening at [[%d]]\n", addr.Port)
	}

	errs := make(chan error, 1)

	go func() {
		errs <- srv.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve: %w", err)
	case <-s.terminate:
		slog.Info("Server terminated by request")
	case <-ctx.Done():
		slog.Info("Server context done", "error", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.RawQuery

	result, ok := s.runner.RunCase(r.Context(), name)
	if !ok {
		// Clients may percent-encode the query string.
		if decoded, err := url.QueryUnescape(name); err == nil && decoded != name {
			name = decoded
			result, ok = s.runner.RunCase(r.Context(), name)
		}
	}

	resp := RunResponse{Status: string(m.StatusFail)}
	if ok {
		resp.Status = string(result.Status)
		resp.Message = result.PrettyLogs()
	} else {
		resp.Message = fmt.Sprintf("test case '%s' not found", name)
	}

	slog.Debug("Served case", "query", name, "status", resp.Status)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to write run response", "query", name, "error", err)
	}
}

func (s *Server) handleTerminate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	s.once.Do(func() { close(s.terminate) })
}
