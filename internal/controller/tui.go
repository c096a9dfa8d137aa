package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "gooze.dev/pkg/cts/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	runningStyle = lipgloss.NewStyle().Faint(true)
)

func styleStatus(status m.Status) string {
	switch status {
	case m.StatusPass:
		return passStyle.Render(string(status))
	case m.StatusSkip:
		return skipStyle.Render(string(status))
	case m.StatusWarn:
		return warnStyle.Render(string(status))
	case m.StatusFail:
		return failStyle.Render(string(status))
	case m.StatusRunning:
		return runningStyle.Render(string(status))
	}

	return string(status)
}

// TUI implements UI using Bubble Tea. Runs are shown as a live progress view,
// listings through a pager when they do not fit the terminal.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the live run view. List mode needs no background program.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newStartConfig(options).mode != ModeRun {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	program := tea.NewProgram(newRunModel(), tea.WithOutput(p.output), tea.WithContext(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	p.program = program
	p.done = done

	return nil
}

// Close stops the live view if it is still running.
func (p *TUI) Close(_ context.Context) {
	program, done := p.running()
	if program == nil {
		return
	}

	program.Quit()
	<-done

	p.mu.Lock()
	p.program = nil
	p.done = nil
	p.mu.Unlock()
}

// Wait blocks until the live view exits or ctx is done.
func (p *TUI) Wait(ctx context.Context) {
	_, done := p.running()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (p *TUI) running() (*tea.Program, chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.program, p.done
}

func (p *TUI) send(msg tea.Msg) bool {
	program, _ := p.running()
	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayConcurrencyInfo sets the size of the run.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, parallel int, shardIndex int, shardCount int, cases int) {
	if err := ctx.Err(); err != nil {
		return
	}

	msg := planMsg{parallel: parallel, shardIndex: shardIndex, shardCount: shardCount, total: cases}
	if !p.send(msg) {
		p.printf("Running %d case(s) with %s (Shard %d/%d)\n", cases, describeParallel(parallel), shardIndex, shardCount)
	}
}

// DisplayStartingCase marks a case as in flight.
func (p *TUI) DisplayStartingCase(ctx context.Context, name string) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.send(caseStartedMsg(name))
}

// DisplayCompletedCase advances the progress bar.
func (p *TUI) DisplayCompletedCase(ctx context.Context, result m.NamedResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !p.send(caseCompletedMsg(result)) {
		p.printf("%s - %s\n", result.Query, styleStatus(result.Result.Status))
	}
}

// DisplaySummary ends the live view with the run summary.
func (p *TUI) DisplaySummary(ctx context.Context, results []m.NamedResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	summary := FormatSummary(results)

	if !p.send(summaryMsg(summary)) {
		p.printf("%s", summary)
		return
	}

	// The summary is the last frame; later output goes below it.
	p.Wait(ctx)
}

// DisplayResultsJSON prints the raw results document.
func (p *TUI) DisplayResultsJSON(ctx context.Context, data []byte) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.printf("%s\n", data)
}

// DisplayRunSaved reports the id a run was stored under.
func (p *TUI) DisplayRunSaved(ctx context.Context, id string) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.printf("%s %s\n", runningStyle.Render("Saved run"), id)
}

// DisplayQueries pages a list of queries.
func (p *TUI) DisplayQueries(ctx context.Context, queries []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.page("Queries", queries)
}

// DisplayTree pages a rendered tree.
func (p *TUI) DisplayTree(ctx context.Context, tree string) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.page("Test tree", strings.Split(strings.TrimRight(tree, "\n"), "\n"))
}

// DisplayRuns pages the stored runs table.
func (p *TUI) DisplayRuns(ctx context.Context, runs []m.RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(runs) == 0 {
		p.printf("No stored runs\n")
		return
	}

	p.page("Stored runs", strings.Split(strings.TrimRight(renderRunsTable(runs), "\n"), "\n"))
}

// DisplayDiff pages a unified diff with added and removed lines colored.
func (p *TUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		p.printf("No differences\n")
		return
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = passStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = failStyle.Render(line)
		}
	}

	p.page("Diff", lines)
}

func (p *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.output, format, args...)
}

// page prints lines directly when they fit the terminal and opens a pager
// otherwise.
func (p *TUI) page(title string, lines []string) {
	model := newPagerModel(title, lines)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		p.printf("%s", model.View())
		return
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	_, _ = program.Run()
}

type (
	planMsg struct {
		parallel   int
		shardIndex int
		shardCount int
		total      int
	}
	caseStartedMsg   string
	caseCompletedMsg m.NamedResult
	summaryMsg       string
)

// maxInFlightShown bounds the in-flight case names listed under the bar.
const maxInFlightShown = 5

// runModel is the live view of a run.
type runModel struct {
	spinner  spinner.Model
	progress progress.Model
	plan     planMsg
	finished int
	counts   map[m.Status]int
	inFlight []string
	summary  string
	quitting bool
}

func newRunModel() runModel {
	return runModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient()),
		counts:   make(map[m.Status]int),
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		const padding = 4

		rm.progress.Width = max(msg.Width-padding, 10)

		return rm, nil

	case tea.KeyMsg:
		//nolint:exhaustive // Only quit keys are handled
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			rm.quitting = true
			return rm, tea.Quit
		default:
		}

		if msg.String() == "q" {
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case planMsg:
		rm.plan = msg
		return rm, nil

	case caseStartedMsg:
		rm.inFlight = append(rm.inFlight, string(msg))
		return rm, nil

	case caseCompletedMsg:
		return rm.complete(m.NamedResult(msg))

	case summaryMsg:
		rm.summary = string(msg)
		rm.inFlight = nil

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) complete(result m.NamedResult) (tea.Model, tea.Cmd) {
	rm.finished++
	rm.counts[result.Result.Status]++

	for i, name := range rm.inFlight {
		if name == result.Query {
			rm.inFlight = append(rm.inFlight[:i:i], rm.inFlight[i+1:]...)
			break
		}
	}

	if result.Result.Status.Failed() {
		return rm, tea.Printf("%s - %s", result.Query, styleStatus(result.Result.Status))
	}

	return rm, nil
}

func (rm runModel) percent() float64 {
	if rm.plan.total == 0 {
		return 0
	}

	return float64(rm.finished) / float64(rm.plan.total)
}

func (rm runModel) View() string {
	var b strings.Builder

	if rm.summary != "" {
		b.WriteString("  " + rm.progress.ViewAs(1) + "\n")
		b.WriteString(rm.summary)

		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %d/%d case(s) with %s (Shard %d/%d)\n",
		rm.spinner.View(), titleStyle.Render("Running"),
		rm.finished, rm.plan.total, describeParallel(rm.plan.parallel), rm.plan.shardIndex, rm.plan.shardCount)
	b.WriteString("  " + rm.progress.ViewAs(rm.percent()) + "\n")
	fmt.Fprintf(&b, "  %s %d  %s %d  %s %d  %s %d\n",
		styleStatus(m.StatusPass), rm.counts[m.StatusPass],
		styleStatus(m.StatusSkip), rm.counts[m.StatusSkip],
		styleStatus(m.StatusWarn), rm.counts[m.StatusWarn],
		styleStatus(m.StatusFail), rm.counts[m.StatusFail])

	shown := rm.inFlight
	if len(shown) > maxInFlightShown {
		shown = shown[:maxInFlightShown]
	}

	for _, name := range shown {
		b.WriteString("  " + runningStyle.Render(name) + "\n")
	}

	if rest := len(rm.inFlight) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "  %s\n", runningStyle.Render(fmt.Sprintf("... and %d more", rest)))
	}

	if rm.quitting {
		b.WriteString("  Display closed, cases keep running.\n")
	}

	return b.String()
}

// pagerModel is the Bubble Tea model for scrolling through long output.
type pagerModel struct {
	title    string
	lines    []string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{
		title: title,
		lines: lines,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())

	case "up", "k":
		pm.offset = max(pm.offset-1, 0)

	case "g", "home":
		pm.offset = 0

	case "G", "end":
		pm.offset = pm.maxOffset()

	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit on screen.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10 // Default
	}
	// Reserve the title, its blank line and a three line footer.
	reserved := 5

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (pm pagerModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

// needsPagination returns true if the lines do not fit on screen.
func (pm pagerModel) needsPagination() bool {
	if len(pm.lines) == 0 || pm.height == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title) + "\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("  (empty)\n")
		return b.String()
	}

	paginate := pm.needsPagination()

	start, end := 0, len(pm.lines)
	if paginate {
		start = min(pm.offset, pm.maxOffset())
		end = min(start+pm.itemsPerPage(), len(pm.lines))
	}

	for _, line := range pm.lines[start:end] {
		b.WriteString(line + "\n")
	}

	if paginate {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Lines %d-%d of %d\n", start+1, end, len(pm.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | d/u: page | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
