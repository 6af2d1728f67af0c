package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/algoforge/katarun/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	elapsedStyle     lipgloss.Style
	logTimeStyle     lipgloss.Style
	logNameStyle     lipgloss.Style
	logPassStyle     lipgloss.Style
	logFailStyle     lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	statusRunStyle   lipgloss.Style
	statusDoneStyle  lipgloss.Style
	statusFailStyle  lipgloss.Style
	memSparkStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	logTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logNameStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	logPassStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logFailStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusRunStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusFailStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	memSparkStyle = lipgloss.NewStyle().
		Foreground(t.Warning)
}
