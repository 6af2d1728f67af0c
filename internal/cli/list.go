package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/algoforge/katarun/internal/suite"
	"github.com/algoforge/katarun/internal/ui"
)

// DisplayExerciseList shows every registered exercise with its summary and
// the number of built-in cases it carries.
//
// Parameters:
//   - registry: The exercise registry.
//   - cases: The full suite, used to count cases per exercise.
//   - out: The writer for standard output.
func DisplayExerciseList(registry *suite.Registry, cases []suite.Case, out io.Writer) {
	counts, _ := suite.CountByExercise(cases)

	maxNameLen := 0
	for _, name := range registry.Names() {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Fprintf(out, "%d registered exercises:\n\n", registry.Len())
	for _, name := range registry.Names() {
		ex, _ := registry.Get(name)
		fmt.Fprintf(out, "  %s%s%s%s  %s(%d cases)%s  %s\n",
			ui.ColorBlue(), name, ui.ColorReset(), padRight("", maxNameLen-len(name)),
			ui.ColorMagenta(), counts[name], ui.ColorReset(),
			ex.Summary)
	}
}

// PrintRunConfig displays the execution configuration before a run starts.
// It shows the selection, concurrency, timeouts, and environment details.
//
// Parameters:
//   - totalCases: The number of cases about to execute.
//   - exercises: The number of exercises those cases cover.
//   - workers: The effective worker count (0 means one per CPU).
//   - caseTimeout: The per-case wall-clock guard.
//   - out: The writer for standard output.
func PrintRunConfig(totalCases, exercises, workers int, caseTimeout time.Duration, out io.Writer) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Running %s%d%s cases across %s%d%s exercises with %s%d%s workers.\n",
		ui.ColorMagenta(), totalCases, ui.ColorReset(),
		ui.ColorMagenta(), exercises, ui.ColorReset(),
		ui.ColorCyan(), workers, ui.ColorReset())
	fmt.Fprintf(out, "Per-case guard: %s%s%s. Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorYellow(), caseTimeout, ui.ColorReset(),
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
