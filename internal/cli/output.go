// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummaryWithConfig], [DisplayQuietSummary], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietSummary].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/algoforge/katarun/internal/format"
	"github.com/algoforge/katarun/internal/harness"
	"github.com/algoforge/katarun/internal/ui"
)

// OutputConfig holds configuration for report output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode reduces output to a single machine-friendly line.
	Quiet bool
	// Verbose enables the per-exercise breakdown.
	Verbose bool
}

// WriteReportToFile writes a plain-text run report to a file.
//
// Parameters:
//   - summary: The aggregated run outcome.
//   - results: The per-case results, in suite order.
//   - config: Output configuration; OutputFile must be non-empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(summary harness.Summary, results []harness.CaseResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Exercise Suite Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Cases: %d\n", summary.Total)
	fmt.Fprintf(file, "# Passed: %d\n", summary.Passed)
	fmt.Fprintf(file, "# Failed: %d\n", summary.Failed)
	fmt.Fprintf(file, "# Duration: %s\n", summary.Duration)
	fmt.Fprintf(file, "\n")

	// Write one line per case
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(file, "%s %s %s\n", status, r.Name(), format.FormatExecutionDuration(r.Duration))
		if !r.Passed && r.Detail != "" {
			fmt.Fprintf(file, "  %s\n", firstLine(r.Detail))
		}
	}

	return nil
}

// FormatQuietSummary formats the run outcome as a single line suitable for
// scripting.
//
// Parameters:
//   - summary: The aggregated run outcome.
//
// Returns:
//   - string: The formatted summary string.
func FormatQuietSummary(summary harness.Summary) string {
	status := "PASS"
	if !summary.AllPassed() {
		status = "FAIL"
	}
	return fmt.Sprintf("%s %d/%d %s", status, summary.Passed, summary.Total,
		format.FormatExecutionDuration(summary.Duration))
}

// DisplayQuietSummary outputs the run outcome in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - summary: The aggregated run outcome.
func DisplayQuietSummary(out io.Writer, summary harness.Summary) {
	fmt.Fprintln(out, FormatQuietSummary(summary))
}

// FormatQuietFailure renders one failed case as a single machine-friendly
// line carrying the input and the expected/actual values.
//
// Parameters:
//   - result: The failed case result.
//
// Returns:
//   - string: The formatted failure line.
func FormatQuietFailure(result harness.CaseResult) string {
	if result.Err != nil {
		return fmt.Sprintf("FAIL %s input=%s error=%s",
			result.Name(), result.Input, firstLine(result.Err.Error()))
	}
	return fmt.Sprintf("FAIL %s input=%s expected=%v actual=%v",
		result.Name(), result.Input, result.Expected, result.Actual)
}

// DisplayQuietFailures outputs one line per failed case. Quiet mode still
// reports every failure; only progress and passing cases are suppressed.
//
// Parameters:
//   - out: The output writer.
//   - results: The per-case results.
func DisplayQuietFailures(out io.Writer, results []harness.CaseResult) {
	for _, r := range harness.Failures(results) {
		fmt.Fprintln(out, FormatQuietFailure(r))
	}
}

// DisplaySummaryWithConfig displays the run outcome with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - summary: The aggregated run outcome.
//   - results: The per-case results.
//   - presenter: The presenter used for non-quiet output.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplaySummaryWithConfig(out io.Writer, summary harness.Summary, results []harness.CaseResult, presenter harness.SuitePresenter, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietFailures(out, results)
		DisplayQuietSummary(out, summary)
	} else {
		presenter.PresentFailures(results, out)
		presenter.PresentSummary(summary, results, config.Verbose, out)
	}

	if config.OutputFile != "" {
		if err := WriteReportToFile(summary, results, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
