package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/algoforge/katarun/internal/format"
	"github.com/algoforge/katarun/internal/harness"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// 200ms keeps the terminal readable without noticeable lag.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with a consolidated progress bar while
// cases execute. It consumes the updates channel until it is closed, then
// stops the spinner and signals completion through wg.
//
// Parameters:
//   - wg: A WaitGroup to signal when display is complete.
//   - updates: Channel receiving per-case completion updates.
//   - total: The total number of cases being executed.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan harness.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()

	tracker := format.NewProgressTracker(total)
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" %s 0%% (0/%d)", progressBar(0, ProgressBarWidth), total))
	sp.Start()
	defer sp.Stop()

	failed := 0
	for update := range updates {
		fraction := tracker.Advance()
		if !update.Passed {
			failed++
		}

		status := fmt.Sprintf(" %s %3.0f%% (%d/%d)",
			progressBar(fraction, ProgressBarWidth), fraction*100, tracker.Completed(), total)
		if failed > 0 {
			status += fmt.Sprintf(", %d failed", failed)
		}
		status += fmt.Sprintf("  ETA %s  %s", format.FormatETA(tracker.ETA()), update.Name)
		sp.UpdateSuffix(status)
	}
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
