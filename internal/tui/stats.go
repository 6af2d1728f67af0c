package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/algoforge/katarun/internal/metrics"
)

// StatsModel displays suite counters and runtime memory metrics.
type StatsModel struct {
	totalCases   int
	passed       int
	failed       int
	startTime    time.Time
	mem          metrics.MemorySnapshot
	numGoroutine int
	heapHistory  *RingBuffer
	width        int
	height       int
}

// NewStatsModel creates a stats panel sized for totalCases cases.
func NewStatsModel(totalCases int) StatsModel {
	return StatsModel{
		totalCases:  totalCases,
		startTime:   time.Now(),
		heapHistory: NewRingBuffer(60),
	}
}

// SetSize updates dimensions.
func (s *StatsModel) SetSize(w, h int) {
	s.width = w
	s.height = h
}

// RecordCase updates the pass/fail counters.
func (s *StatsModel) RecordCase(passed bool) {
	if passed {
		s.passed++
	} else {
		s.failed++
	}
}

// UpdateMemStats stores the latest memory reading and extends the heap history.
func (s *StatsModel) UpdateMemStats(snap metrics.MemorySnapshot, numGoroutine int) {
	s.mem = snap
	s.numGoroutine = numGoroutine
	if snap.HeapSys > 0 {
		s.heapHistory.Push(float64(snap.HeapAlloc) / float64(snap.HeapSys) * 100)
	}
}

// Reset clears the counters for a fresh run. Memory history is kept.
func (s *StatsModel) Reset() {
	s.passed = 0
	s.failed = 0
	s.startTime = time.Now()
}

// Completed returns how many cases have finished.
func (s StatsModel) Completed() int {
	return s.passed + s.failed
}

// Fraction returns run completion in [0,1].
func (s StatsModel) Fraction() float64 {
	if s.totalCases == 0 {
		return 1
	}
	f := float64(s.Completed()) / float64(s.totalCases)
	if f > 1 {
		f = 1
	}
	return f
}

// throughput returns completed cases per second since the run started.
func (s StatsModel) throughput() float64 {
	elapsed := time.Since(s.startTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Completed()) / elapsed
}

// View renders the stats panel.
func (s StatsModel) View() string {
	var rows strings.Builder

	passedStr := logPassStyle.Render(fmt.Sprintf("%d", s.passed))
	failedStr := logFailStyle.Render(fmt.Sprintf("%d", s.failed))
	pipe := metricLabelStyle.Render(" | ")

	rows.WriteString(fmt.Sprintf(" %s %s/%d%s%s %s%s%s %s",
		metricLabelStyle.Render("Cases:"),
		metricValueStyle.Render(fmt.Sprintf("%d", s.Completed())), s.totalCases,
		pipe,
		metricLabelStyle.Render("Pass:"), passedStr,
		pipe,
		metricLabelStyle.Render("Fail:"), failedStr))

	rows.WriteString("\n")
	rows.WriteString(fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", "Speed:")),
		metricValueStyle.Render(fmt.Sprintf("%.1f cases/s", s.throughput()))))

	rows.WriteString("\n")
	rows.WriteString(fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", "Heap:")),
		metricValueStyle.Render(formatBytes(s.mem.HeapAlloc)+" / "+formatBytes(s.mem.HeapSys))))

	rows.WriteString("\n")
	rows.WriteString(fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", "GC:")),
		metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", s.mem.NumGC, float64(s.mem.PauseTotalNs)/1e6))))

	rows.WriteString("\n")
	rows.WriteString(fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", "Goroutines:")),
		metricValueStyle.Render(fmt.Sprintf("%d", s.numGoroutine))))

	sparkWidth := s.width - 6
	if sparkWidth > 0 && s.heapHistory.Len() > 0 {
		samples := s.heapHistory.Slice()
		if len(samples) > sparkWidth {
			samples = samples[len(samples)-sparkWidth:]
		}
		rows.WriteString("\n ")
		rows.WriteString(memSparkStyle.Render(RenderSparkline(samples)))
	}

	return panelStyle.
		Width(s.width - 2).
		Height(s.height - 2).
		Render(rows.String())
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
