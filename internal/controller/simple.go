package controller

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/cts/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, parallel int, shardIndex int, shardCount int, cases int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d case(s) with %s (Shard %d/%d)\n", cases, describeParallel(parallel), shardIndex, shardCount)
}

func describeParallel(parallel int) string {
	if parallel <= 0 {
		return "unbounded parallelism"
	}

	return fmt.Sprintf("%d worker(s)", parallel)
}

// DisplayStartingCase is a no-op: plain output only reports finished cases.
func (s *SimpleUI) DisplayStartingCase(context.Context, string) {}

// DisplayCompletedCase prints one line per finished case.
func (s *SimpleUI) DisplayCompletedCase(ctx context.Context, result m.NamedResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s - %s (%.3fms)\n", result.Query, result.Result.Status, result.Result.TimeMS)
}

// DisplaySummary prints warnings, failures and the pass rate of a run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.NamedResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", FormatSummary(results))
}

// DisplayResultsJSON prints the raw results document.
func (s *SimpleUI) DisplayResultsJSON(ctx context.Context, data []byte) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", data)
}

// DisplayRunSaved reports the id a run was stored under.
func (s *SimpleUI) DisplayRunSaved(ctx context.Context, id string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Saved run %s\n", id)
}

// DisplayQueries prints one query per line.
func (s *SimpleUI) DisplayQueries(ctx context.Context, queries []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, q := range queries {
		s.printf("%s\n", q)
	}
}

// DisplayTree prints a rendered tree.
func (s *SimpleUI) DisplayTree(ctx context.Context, tree string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", ensureNewline(tree))
}

// DisplayRuns prints stored runs as a table.
func (s *SimpleUI) DisplayRuns(ctx context.Context, runs []m.RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(runs) == 0 {
		s.printf("No stored runs\n")
		return
	}

	s.printf("%s", renderRunsTable(runs))
}

// DisplayDiff prints a unified diff, or a note when runs agree.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("No differences\n")
		return
	}

	s.printf("%s", ensureNewline(diff))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}

func renderRunsTable(runs []m.RunInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Started", "Queries", "Pass", "Skip", "Warn", "Fail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, run := range runs {
		table.Append([]string{
			shortID(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			strings.Join(run.Queries, " "),
			fmt.Sprintf("%d", run.Summary.Passed),
			fmt.Sprintf("%d", run.Summary.Skipped),
			fmt.Sprintf("%d", run.Summary.Warned),
			fmt.Sprintf("%d", run.Summary.Failed),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Runs %d", len(runs)), "", "", "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func shortID(id string) string {
	const shortIDLength = 8
	if len(id) <= shortIDLength {
		return id
	}

	return id[:shortIDLength]
}

// FormatSummary renders the end of run report: a section listing each
// warned case, one listing each failed case, and the pass rate.
func FormatSummary(results []m.NamedResult) string {
	var (
		b              strings.Builder
		warned, failed []m.NamedResult
	)

	for _, r := range results {
		switch r.Result.Status {
		case m.StatusWarn:
			warned = append(warned, r)
		case m.StatusFail:
			failed = append(failed, r)
		case m.StatusRunning, m.StatusPass, m.StatusSkip:
		}
	}

	writeSection(&b, "Warnings", warned)
	writeSection(&b, "Failures", failed)

	total := len(results)
	passed := total - len(warned) - len(failed)

	b.WriteString("\n** Summary **\n")
	fmt.Fprintf(&b, "Passed  w/o warnings = %s\n", reportRatio(passed, total))
	fmt.Fprintf(&b, "Passed with warnings = %s\n", reportRatio(len(warned), total))
	fmt.Fprintf(&b, "Failed               = %s\n", reportRatio(len(failed), total))

	return b.String()
}

func writeSection(b *strings.Builder, title string, results []m.NamedResult) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(b, "\n** %s **\n", title)

	for _, r := range results {
		fmt.Fprintf(b, "%s - %s\n", r.Query, r.Result.Status)

		if logs := r.Result.PrettyLogs(); logs != "" {
			b.WriteString(indent(logs, "  "))
			b.WriteString("\n")
		}
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}

// reportRatio renders "x / total = pp.pp%" with x padded to the width of total.
func reportRatio(x, total int) string {
	width := 1
	if total > 0 {
		width = 1 + int(math.Log10(float64(total)))
	}

	pct := 0.0
	if total > 0 {
		pct = 100 * float64(x) / float64(total)
	}

	return fmt.Sprintf("%*d / %d = %6.2f%%", width, x, total, pct)
}
