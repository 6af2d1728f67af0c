package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/algoforge/katarun/internal/errors"
	"github.com/algoforge/katarun/internal/harness"
	"github.com/algoforge/katarun/internal/metrics"
	"github.com/algoforge/katarun/internal/suite"
)

// Layout constants.
const (
	headerHeight  = 1
	footerHeight  = 1
	barHeight     = 1
	minBodyHeight = 4

	// LogsPanelWidthPercent is the share of the body width given to the case log.
	LogsPanelWidthPercent = 60

	tickInterval = 500 * time.Millisecond
)

// Messages exchanged between the run goroutines and the bubbletea loop.
type (
	// TickMsg drives the elapsed timer and memory sampling.
	TickMsg time.Time

	// MemStatsMsg carries a runtime memory reading.
	MemStatsMsg struct {
		Snapshot     metrics.MemorySnapshot
		NumGoroutine int
	}

	// CaseDoneMsg reports one completed case.
	CaseDoneMsg struct {
		Name       string
		Passed     bool
		Duration   time.Duration
		Generation uint64
	}

	// RunCompleteMsg reports the end of a suite run.
	RunCompleteMsg struct {
		Summary    harness.Summary
		ExitCode   int
		Generation uint64
	}

	// ContextCancelledMsg reports that the run context was cancelled externally.
	ContextCancelledMsg struct {
		Generation uint64
	}
)

// RunState tracks the lifecycle of the current suite run.
type RunState struct {
	parentCtx  context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
	summary    harness.Summary
}

// Layout tracks available terminal dimensions.
type Layout struct {
	width  int
	height int
}

func (l Layout) bodyHeight() int {
	h := l.height - headerHeight - barHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

func (l Layout) logsWidth() int {
	w := l.width * LogsPanelWidthPercent / 100
	if w < 20 {
		w = 20
	}
	return w
}

func (l Layout) statsWidth() int {
	w := l.width - l.logsWidth()
	if w < 20 {
		w = 20
	}
	return w
}

// Model is the root bubbletea model for the suite dashboard.
type Model struct {
	RunState
	Layout

	ref      *programRef
	registry *suite.Registry
	cases    []suite.Case
	opts     harness.Options

	header HeaderModel
	logs   CaseLogModel
	stats  StatsModel
	bar    progress.Model
	keymap KeyMap

	collector *metrics.MemoryCollector
}

// NewModel creates the dashboard model for the given suite.
func NewModel(parentCtx context.Context, registry *suite.Registry, cases []suite.Case, opts harness.Options, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		RunState: RunState{
			parentCtx: parentCtx,
			ctx:       ctx,
			cancel:    cancel,
		},
		ref:       &programRef{},
		registry:  registry,
		cases:     cases,
		opts:      opts,
		header:    NewHeaderModel(version),
		logs:      NewCaseLogModel(),
		stats:     NewStatsModel(len(cases)),
		bar:       progress.New(progress.WithDefaultGradient()),
		keymap:    DefaultKeyMap(),
		collector: metrics.NewMemoryCollector(),
	}
}

// Init starts the suite run and the periodic timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		sampleMemStatsCmd(m.collector),
		startRunCmd(m.ref, m.ctx, m.registry, m.cases, m.opts, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(m.width)
		m.logs.SetSize(m.logsWidth(), m.bodyHeight())
		m.stats.SetSize(m.statsWidth(), m.bodyHeight())
		m.bar.Width = m.width - 2
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(tickCmd(), sampleMemStatsCmd(m.collector))

	case MemStatsMsg:
		m.stats.UpdateMemStats(msg.Snapshot, msg.NumGoroutine)
		return m, nil

	case CaseDoneMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.logs.Append(msg.Name, msg.Passed, msg.Duration)
		m.stats.RecordCase(msg.Passed)
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.summary = msg.Summary
		m.header.SetDone(msg.Summary.Failed > 0 || msg.ExitCode != apperrors.ExitSuccess)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation || m.done {
			return m, nil
		}
		m.done = true
		m.exitCode = apperrors.ExitErrorCanceled
		m.header.SetDone(true)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Rerun):
		if !m.done {
			return m, nil
		}
		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.summary = harness.Summary{}
		m.header.Reset()
		m.logs.Reset()
		m.stats = NewStatsModel(len(m.cases))
		m.stats.SetSize(m.statsWidth(), m.bodyHeight())
		return m, tea.Batch(
			tickCmd(),
			startRunCmd(m.ref, m.ctx, m.registry, m.cases, m.opts, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		m.logs.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.logs.ScrollDown(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.logs.ScrollUp(m.bodyHeight() - 2)
	case key.Matches(msg, m.keymap.PageDown):
		m.logs.ScrollDown(m.bodyHeight() - 2)
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.logs.View(), m.stats.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		" "+m.bar.ViewAs(m.stats.Fraction()),
		m.footerView(),
	)
}

func (m Model) footerView() string {
	hints := footerKeyStyle.Render("q") + footerDescStyle.Render(" quit  ") +
		footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll")
	if m.done {
		hints += footerDescStyle.Render("  ") +
			footerKeyStyle.Render("r") + footerDescStyle.Render(" re-run")
	}
	return " " + hints
}

// tickCmd schedules the next timer tick.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory statistics.
func sampleMemStatsCmd(collector *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{
			Snapshot:     collector.Snapshot(),
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// watchContextCmd blocks until the run context is cancelled.
func watchContextCmd(ctx context.Context, generation uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Generation: generation}
	}
}

// startRunCmd executes the suite in the background, streaming case results
// through the program reference, and reports the final outcome.
func startRunCmd(ref *programRef, ctx context.Context, registry *suite.Registry, cases []suite.Case, opts harness.Options, generation uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		reporter := &TUIProgressReporter{ref: ref, generation: generation}
		results := harness.ExecuteSuite(ctx, registry, cases, opts, reporter, io.Discard)
		summary := harness.Summarize(results, time.Since(start))

		exitCode := summary.ExitCode()
		if ctx.Err() != nil {
			exitCode = apperrors.ExitErrorCanceled
		}

		return RunCompleteMsg{
			Summary:    summary,
			ExitCode:   exitCode,
			Generation: generation,
		}
	}
}

// Run starts the full-screen dashboard and blocks until the user quits.
// It returns the process exit code for the suite run.
func Run(ctx context.Context, registry *suite.Registry, cases []suite.Case, opts harness.Options, version string) int {
	initTUIStyles()

	model := NewModel(ctx, registry, cases, opts, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitErrorGeneric
}
