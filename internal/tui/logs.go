package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/algoforge/katarun/internal/format"
)

// caseLine is one rendered entry in the case log.
type caseLine struct {
	at       time.Time
	name     string
	passed   bool
	duration time.Duration
}

// CaseLogModel shows completed cases in arrival order, newest at the bottom.
// The user can scroll back through the history with the arrow keys.
type CaseLogModel struct {
	lines  []caseLine
	offset int // lines scrolled up from the bottom
	width  int
	height int
}

// NewCaseLogModel creates an empty case log.
func NewCaseLogModel() CaseLogModel {
	return CaseLogModel{}
}

// SetSize updates dimensions.
func (l *CaseLogModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Append records a completed case. Appending snaps the view back to the bottom.
func (l *CaseLogModel) Append(name string, passed bool, duration time.Duration) {
	l.lines = append(l.lines, caseLine{
		at:       time.Now(),
		name:     name,
		passed:   passed,
		duration: duration,
	})
	l.offset = 0
}

// Reset clears the log.
func (l *CaseLogModel) Reset() {
	l.lines = nil
	l.offset = 0
}

// ScrollUp moves the view n lines toward older entries.
func (l *CaseLogModel) ScrollUp(n int) {
	l.offset += n
	if max := l.maxOffset(); l.offset > max {
		l.offset = max
	}
}

// ScrollDown moves the view n lines toward newer entries.
func (l *CaseLogModel) ScrollDown(n int) {
	l.offset -= n
	if l.offset < 0 {
		l.offset = 0
	}
}

// visibleLines returns how many log rows fit inside the panel border.
func (l CaseLogModel) visibleLines() int {
	v := l.height - 2
	if v < 1 {
		v = 1
	}
	return v
}

func (l CaseLogModel) maxOffset() int {
	max := len(l.lines) - l.visibleLines()
	if max < 0 {
		return 0
	}
	return max
}

// View renders the case log panel.
func (l CaseLogModel) View() string {
	visible := l.visibleLines()

	end := len(l.lines) - l.offset
	if end > len(l.lines) {
		end = len(l.lines)
	}
	start := end - visible
	if start < 0 {
		start = 0
	}

	var rows strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			rows.WriteString("\n")
		}
		rows.WriteString(l.renderLine(l.lines[i]))
	}

	return panelStyle.
		Width(l.width - 2).
		Height(l.height - 2).
		Render(rows.String())
}

func (l CaseLogModel) renderLine(line caseLine) string {
	mark := logPassStyle.Render("✓")
	if !line.passed {
		mark = logFailStyle.Render("✗")
	}

	ts := logTimeStyle.Render(line.at.Format("15:04:05"))
	name := logNameStyle.Render(line.name)
	dur := logTimeStyle.Render(format.FormatExecutionDuration(line.duration))

	row := fmt.Sprintf(" %s %s %s %s", ts, mark, name, dur)

	maxWidth := l.width - 4
	if maxWidth > 0 && lipgloss.Width(row) > maxWidth {
		row = truncateANSI(row, maxWidth)
	}
	return row
}

// truncateANSI trims a styled string to a visible width, keeping escape codes intact.
func truncateANSI(s string, width int) string {
	var b strings.Builder
	visible := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			b.WriteRune(r)
			inEscape = true
		case visible < width:
			b.WriteRune(r)
			visible++
		}
	}
	return b.String()
}
