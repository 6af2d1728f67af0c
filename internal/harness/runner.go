package harness

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/algoforge/katarun/internal/errors"
	"github.com/algoforge/katarun/internal/logging"
	"github.com/algoforge/katarun/internal/suite"
)

// tracerName identifies harness spans in exported traces.
const tracerName = "katarun/harness"

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// worker goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// DefaultCaseTimeout is the per-case wall-clock guard applied when neither
// the case nor the options specify one.
const DefaultCaseTimeout = 5 * time.Second

// Options configures a suite run.
type Options struct {
	// Workers caps the number of cases executing concurrently.
	// Zero means one worker per available CPU.
	Workers int
	// CaseTimeout is the per-case wall-clock guard. A case whose own
	// Timeout is set overrides it. Zero means DefaultCaseTimeout;
	// negative disables the guard entirely.
	CaseTimeout time.Duration
	// Logger receives per-case structured log events. Nil means no logging.
	Logger logging.Logger
	// Recorder receives per-case metric observations. Nil means none.
	Recorder CaseRecorder
}

// normalize fills in defaults for unset options.
func (o Options) normalize() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.CaseTimeout == 0 {
		o.CaseTimeout = DefaultCaseTimeout
	}
	if o.Logger == nil {
		o.Logger = logging.NopLogger{}
	}
	if o.Recorder == nil {
		o.Recorder = NullCaseRecorder{}
	}
	return o
}

// ExecuteSuite orchestrates the concurrent execution of a slice of cases.
//
// It manages the lifecycle of worker goroutines, collects per-case results
// in suite order, and coordinates the display of progress updates. This
// function is the core of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - registry: The exercise registry the cases dispatch against.
//   - cases: The cases to execute, in suite order.
//   - opts: Execution options (worker count, timeouts, logging, metrics).
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CaseResult: A slice containing the result of each case, indexed
//     like the input cases.
func ExecuteSuite(ctx context.Context, registry *suite.Registry, cases []suite.Case, opts Options, progressReporter ProgressReporter, out io.Writer) []CaseResult {
	opts = opts.normalize()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "suite")
	span.SetAttributes(
		attribute.Int("katarun.cases", len(cases)),
		attribute.Int("katarun.workers", opts.Workers),
	)
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	results := make([]CaseResult, len(cases))
	updates := make(chan ProgressUpdate, opts.Workers*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, updates, len(cases), out)

	for i, c := range cases {
		idx, tc := i, c
		g.Go(func() error {
			results[idx] = executeCase(ctx, registry, tc, opts)
			updates <- ProgressUpdate{
				CaseIndex: idx,
				Name:      tc.Name(),
				Passed:    results[idx].Passed,
				Duration:  results[idx].Duration,
			}
			return nil
		})
	}

	g.Wait()
	close(updates)
	displayWg.Wait()

	return results
}

// executeCase runs a single case with panic recovery and an optional
// wall-clock guard, then evaluates the outcome against the expectation.
func executeCase(ctx context.Context, registry *suite.Registry, tc suite.Case, opts Options) CaseResult {
	result := CaseResult{
		Exercise: tc.Exercise,
		ID:       tc.ID,
		Input:    tc.FormatArgs(),
		Expected: tc.Expected,
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "case")
	span.SetAttributes(
		attribute.String("katarun.exercise", tc.Exercise),
		attribute.String("katarun.case", tc.ID),
	)
	defer span.End()

	ex, ok := registry.Get(tc.Exercise)
	if !ok {
		result.Err = apperrors.NewConfigError("unknown exercise %q", tc.Exercise)
		result.Detail = result.Err.Error()
		span.SetStatus(codes.Error, result.Detail)
		return result
	}

	startTime := time.Now()
	actual, err := callGuarded(ctx, ex, tc, opts.CaseTimeout)
	result.Duration = time.Since(startTime)
	result.Actual = actual
	result.Err = err

	evaluate(&result, tc)

	span.SetAttributes(attribute.Bool("katarun.passed", result.Passed))
	if result.Passed {
		opts.Logger.Debug("case passed",
			logging.String("case", tc.Name()),
			logging.Dur("duration", result.Duration))
	} else {
		span.SetStatus(codes.Error, result.Detail)
		opts.Logger.Error("case failed",
			logging.String("case", tc.Name()),
			logging.String("detail", result.Detail),
			logging.Dur("duration", result.Duration))
	}
	opts.Recorder.ObserveCase(tc.Exercise, result.Passed, result.Duration)

	return result
}

// callGuarded invokes the exercise in its own goroutine so a runaway case
// cannot wedge the worker. The timeout argument follows Options.CaseTimeout
// semantics; the case's own Timeout, when set, takes precedence.
func callGuarded(ctx context.Context, ex suite.Exercise, tc suite.Case, timeout time.Duration) (actual any, err error) {
	if tc.Timeout > 0 {
		timeout = tc.Timeout
	}

	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: &apperrors.PanicError{Value: r}}
			}
		}()
		value, callErr := ex.Call(tc.Args)
		done <- outcome{value: value, err: callErr}
	}()

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case o := <-done:
		return o.value, o.err
	case <-timeoutC:
		return nil, &apperrors.TimeoutError{Operation: tc.Name(), Limit: timeout}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// evaluate sets Passed and Detail on the result according to the case
// expectation: an expected-error substring match, or value equality under
// the case epsilon.
func evaluate(result *CaseResult, tc suite.Case) {
	if tc.ExpectError != "" {
		switch {
		case result.Err == nil:
			result.Detail = fmt.Sprintf("expected error containing %q, got value %v", tc.ExpectError, result.Actual)
		case !strings.Contains(result.Err.Error(), tc.ExpectError):
			result.Detail = fmt.Sprintf("expected error containing %q, got %q", tc.ExpectError, result.Err.Error())
		default:
			result.Passed = true
		}
		return
	}

	if result.Err != nil {
		result.Detail = fmt.Sprintf("unexpected error: %v", result.Err)
		return
	}

	epsilon := tc.Epsilon
	if epsilon == 0 {
		epsilon = suite.DefaultEpsilon
	}
	if !suite.Equal(tc.Expected, result.Actual, epsilon) {
		result.Detail = suite.Diff(tc.Expected, result.Actual)
		return
	}
	result.Passed = true
}
