//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package harness

import (
	"io"
	"sync"
	"time"
)

// ProgressUpdate carries the outcome of a single finished case to the
// progress display goroutine.
type ProgressUpdate struct {
	// CaseIndex is the position of the case in the executed suite.
	CaseIndex int
	// Name is the qualified case name ("exercise/id").
	Name string
	// Passed reports whether the case passed.
	Passed bool
	// Duration is the time the case took to execute.
	Duration time.Duration
}

// ProgressReporter defines the interface for displaying execution progress.
// This interface decouples the harness from the presentation layer, so the
// runner can drive a spinner, a TUI, or nothing at all.
//
// Implementations handle the visual representation of progress while the
// harness focuses on coordinating the cases.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// updates is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - updates: Channel receiving per-case completion updates.
	//   - total: The total number of cases being executed.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, updates, total, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the updates channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
		// Drain channel silently
	}
}

// SuitePresenter defines the interface for presenting suite results.
// This interface decouples the harness from presentation concerns, allowing
// different output formats without modifying the execution logic.
type SuitePresenter interface {
	// PresentFailures displays a detail block for every failed case.
	PresentFailures(results []CaseResult, out io.Writer)

	// PresentSummary displays the final per-exercise and global summary.
	PresentSummary(summary Summary, results []CaseResult, verbose bool, out io.Writer)
}

// CaseRecorder receives per-case observations for metrics collection.
// The harness calls it once per finished case.
type CaseRecorder interface {
	ObserveCase(exercise string, passed bool, duration time.Duration)
}

// NullCaseRecorder discards all observations.
type NullCaseRecorder struct{}

// ObserveCase discards the observation.
func (NullCaseRecorder) ObserveCase(string, bool, time.Duration) {}
