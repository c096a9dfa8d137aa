// Package controller provides the front ends that display cts runs: a plain
// text UI, an interactive TUI and the HTTP RPC server.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/cts/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to case execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithListMode sets the UI to listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI displays the progress and outcome of cts commands.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(ctx context.Context, parallel int, shardIndex int, shardCount int, cases int)
	DisplayStartingCase(ctx context.Context, name string)
	DisplayCompletedCase(ctx context.Context, result m.NamedResult)
	DisplaySummary(ctx context.Context, results []m.NamedResult)
	DisplayResultsJSON(ctx context.Context, data []byte)
	DisplayRunSaved(ctx context.Context, id string)
	DisplayQueries(ctx context.Context, queries []string)
	DisplayTree(ctx context.Context, tree string)
	DisplayRuns(ctx context.Context, runs []m.RunInfo)
	DisplayDiff(ctx context.Context, diff string)
}

// NewUI returns the TUI when useTTY is set and the plain UI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
