package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/algoforge/katarun/internal/format"
	"github.com/algoforge/katarun/internal/harness"
	"github.com/algoforge/katarun/internal/ui"
)

// CLIProgressReporter implements harness.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during suite execution.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements harness.ProgressReporter.
var _ harness.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing cases.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan harness.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, updates, total, out)
}

// CLISuitePresenter implements harness.SuitePresenter for CLI output.
// It provides formatted, colorized failure reports and run summaries for the
// command-line interface.
type CLISuitePresenter struct{}

// Verify interface compliance.
var _ harness.SuitePresenter = CLISuitePresenter{}

// PresentFailures displays a detail block for every failed case, showing the
// input, the expectation, what the exercise actually produced, and the diff
// when one is available.
func (CLISuitePresenter) PresentFailures(results []harness.CaseResult, out io.Writer) {
	failures := harness.Failures(results)
	if len(failures) == 0 {
		return
	}

	fmt.Fprintf(out, "\n--- Failures (%d) ---\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(out, "\n%s%s✗ %s%s\n", ui.ColorBold(), ui.ColorRed(), f.Name(), ui.ColorReset())
		fmt.Fprintf(out, "  input:    %s\n", f.Input)
		if f.Err != nil {
			fmt.Fprintf(out, "  error:    %s%v%s\n", ui.ColorRed(), f.Err, ui.ColorReset())
		}
		if f.Expected != nil {
			fmt.Fprintf(out, "  expected: %v\n", f.Expected)
		}
		if f.Actual != nil {
			fmt.Fprintf(out, "  actual:   %v\n", f.Actual)
		}
		if f.Detail != "" && f.Err == nil {
			fmt.Fprintf(out, "  diff (-expected +actual):\n%s", indent(f.Detail, "    "))
		}
	}
}

// PresentSummary displays the run summary. In verbose mode it includes the
// per-exercise breakdown table with counts and cumulative durations.
// Uses manual padding to correctly handle ANSI color codes.
func (CLISuitePresenter) PresentSummary(summary harness.Summary, results []harness.CaseResult, verbose bool, out io.Writer) {
	if verbose {
		presentRollupTable(results, out)
	}

	if summary.AllPassed() {
		fmt.Fprintf(out, "\n%s%s✓ PASS%s  %d/%d cases in %s\n",
			ui.ColorBold(), ui.ColorGreen(), ui.ColorReset(),
			summary.Passed, summary.Total, format.FormatExecutionDuration(summary.Duration))
		return
	}
	if summary.Total == 0 {
		fmt.Fprintf(out, "\n%sno cases selected%s\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "\n%s%s✗ FAIL%s  %d/%d cases passed, %d failed, in %s\n",
		ui.ColorBold(), ui.ColorRed(), ui.ColorReset(),
		summary.Passed, summary.Total, summary.Failed,
		format.FormatExecutionDuration(summary.Duration))
}

// presentRollupTable displays the per-exercise breakdown with counts,
// durations, and status in a formatted tabular layout.
func presentRollupTable(results []harness.CaseResult, out io.Writer) {
	rollups := harness.RollupByExercise(results)
	if len(rollups) == 0 {
		return
	}

	fmt.Fprintf(out, "\n--- Exercise Summary ---\n")

	// Find the maximum name width for proper alignment
	maxNameLen := 8 // "Exercise" header length
	maxDurationLen := 8
	for _, r := range rollups {
		if len(r.Exercise) > maxNameLen {
			maxNameLen = len(r.Exercise)
		}
		duration := format.FormatExecutionDuration(r.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sExercise%s%s   %sCases%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-8),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, r := range rollups {
		cases := fmt.Sprintf("%d/%d", r.Passed, r.Total)
		duration := format.FormatExecutionDuration(r.Duration)

		var status string
		if r.Passed == r.Total {
			status = fmt.Sprintf("%s✅ Pass%s", ui.ColorGreen(), ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s❌ Fail (%d)%s", ui.ColorRed(), r.Total-r.Passed, ui.ColorReset())
		}

		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), r.Exercise, ui.ColorReset(), padRight("", maxNameLen-len(r.Exercise)),
			cases, padRight("", 5-len(cases)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// indent prefixes every non-empty line of s with the given prefix.
func indent(s, prefix string) string {
	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line == "" {
			builder.WriteByte('\n')
			continue
		}
		builder.WriteString(prefix)
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}
