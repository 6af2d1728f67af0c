package harness

import (
	"sort"
	"time"

	apperrors "github.com/algoforge/katarun/internal/errors"
)

// CaseResult encapsulates the outcome of a single executed case. It serves
// as the shared domain type between the harness and presentation layers.
type CaseResult struct {
	// Exercise is the name of the exercise the case belongs to.
	Exercise string
	// ID is the case identifier, unique within its exercise.
	ID string
	// Input is the rendered argument list, for failure reports.
	Input string
	// Expected is the expected value, nil when an error was expected.
	Expected any
	// Actual is the value the exercise produced, nil on error.
	Actual any
	// Err contains the execution error, if any (timeout, panic, argument
	// rejection, or an unexpected exercise error).
	Err error
	// Passed reports whether the case met its expectation.
	Passed bool
	// Detail is a human-readable explanation of the failure, empty on pass.
	Detail string
	// Duration is the time taken to execute the case.
	Duration time.Duration
}

// Name returns the qualified "exercise/id" case name.
func (r CaseResult) Name() string {
	return r.Exercise + "/" + r.ID
}

// Summary aggregates the outcome of a suite run.
type Summary struct {
	// Total is the number of executed cases.
	Total int
	// Passed is the number of cases that met their expectation.
	Passed int
	// Failed is the number of cases that did not.
	Failed int
	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
}

// AllPassed reports whether every executed case passed.
func (s Summary) AllPassed() bool {
	return s.Failed == 0 && s.Total > 0
}

// ExitCode maps the summary to the process exit code: success when every
// case passed, the failure code otherwise. An empty run counts as success.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return apperrors.ExitErrorFailures
	}
	return apperrors.ExitSuccess
}

// Summarize builds a Summary from per-case results and the run duration.
func Summarize(results []CaseResult, duration time.Duration) Summary {
	summary := Summary{Total: len(results), Duration: duration}
	for _, r := range results {
		if r.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// Failures returns the failed results in suite order.
func Failures(results []CaseResult) []CaseResult {
	var failed []CaseResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// ExerciseRollup aggregates case outcomes for one exercise.
type ExerciseRollup struct {
	// Exercise is the exercise name.
	Exercise string
	// Total is the number of cases executed for the exercise.
	Total int
	// Passed is the number of passing cases.
	Passed int
	// Duration is the summed execution time of the exercise's cases.
	Duration time.Duration
}

// RollupByExercise groups results per exercise, sorted by exercise name.
func RollupByExercise(results []CaseResult) []ExerciseRollup {
	byName := make(map[string]*ExerciseRollup)
	for _, r := range results {
		rollup, ok := byName[r.Exercise]
		if !ok {
			rollup = &ExerciseRollup{Exercise: r.Exercise}
			byName[r.Exercise] = rollup
		}
		rollup.Total++
		if r.Passed {
			rollup.Passed++
		}
		rollup.Duration += r.Duration
	}

	rollups := make([]ExerciseRollup, 0, len(byName))
	for _, rollup := range byName {
		rollups = append(rollups, *rollup)
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Exercise < rollups[j].Exercise
	})
	return rollups
}
