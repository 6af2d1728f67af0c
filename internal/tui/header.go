package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/algoforge/katarun/internal/format"
)

// HeaderModel renders the top bar: title, version, elapsed time and run status.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	width     int
	status    string
	failed    bool
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		status:    "RUNNING",
	}
}

// SetDone freezes the elapsed timer and records the final status.
func (h *HeaderModel) SetDone(failed bool) {
	h.endTime = time.Now()
	h.failed = failed
	if failed {
		h.status = "FAIL"
	} else {
		h.status = "PASS"
	}
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
	h.status = "RUNNING"
	h.failed = false
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "katarun"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")

	var duration time.Duration
	if !h.endTime.IsZero() {
		duration = h.endTime.Sub(h.startTime)
	} else {
		duration = time.Since(h.startTime)
	}
	elapsed := elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(duration)))

	var status string
	switch {
	case h.endTime.IsZero():
		status = statusRunStyle.Render(h.status)
	case h.failed:
		status = statusFailStyle.Render(h.status)
	default:
		status = statusDoneStyle.Render(h.status)
	}

	leftPart := title + pipe + elapsed + pipe + status
	leftLen := lipgloss.Width(leftPart)

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - leftLen
	if gap < 0 {
		gap = 0
	}

	row := leftPart + spaces(gap)

	return headerStyle.Width(h.width).Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
