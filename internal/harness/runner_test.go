package harness_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/goleak"

	apperrors "github.com/algoforge/katarun/internal/errors"
	"github.com/algoforge/katarun/internal/harness"
	"github.com/algoforge/katarun/internal/harness/mocks"
	"github.com/algoforge/katarun/internal/suite"
)

// TestMain verifies no goroutine leaks out of the runner across the package.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestRegistry builds a registry with synthetic exercises exercising the
// runner's pass, fail, panic, and slow paths.
func newTestRegistry(t *testing.T) *suite.Registry {
	t.Helper()
	registry := suite.NewRegistry()

	exercises := []suite.Exercise{
		{
			Name:    "double",
			Summary: "returns twice its argument",
			Call: func(args []any) (any, error) {
				n, ok := args[0].(int)
				if !ok {
					return nil, errors.New("want int")
				}
				return n * 2, nil
			},
		},
		{
			Name:    "explode",
			Summary: "always returns an error",
			Call: func(args []any) (any, error) {
				return nil, errors.New("arithmetic meltdown")
			},
		},
		{
			Name:    "panicky",
			Summary: "always panics",
			Call: func(args []any) (any, error) {
				panic("unguarded index")
			},
		},
		{
			Name:    "sleepy",
			Summary: "sleeps before answering",
			Call: func(args []any) (any, error) {
				d, ok := args[0].(time.Duration)
				if !ok {
					return nil, errors.New("want duration")
				}
				time.Sleep(d)
				return true, nil
			},
		},
	}
	for _, ex := range exercises {
		if err := registry.Register(ex); err != nil {
			t.Fatalf("Register(%s): %v", ex.Name, err)
		}
	}
	return registry
}

// TestExecuteSuite_AllPass verifies passing cases are reported in suite order.
func TestExecuteSuite_AllPass(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "double", ID: "one", Args: []any{1}, Expected: 2},
		{Exercise: "double", ID: "two", Args: []any{2}, Expected: 4},
		{Exercise: "double", ID: "three", Args: []any{3}, Expected: 6},
	}

	results := harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{Workers: 2}, harness.NullProgressReporter{}, io.Discard)

	if len(results) != len(cases) {
		t.Fatalf("got %d results, want %d", len(results), len(cases))
	}
	for i, r := range results {
		if r.Name() != cases[i].Name() {
			t.Errorf("results[%d] = %s, want %s (suite order)", i, r.Name(), cases[i].Name())
		}
		if !r.Passed {
			t.Errorf("%s failed unexpectedly: %s", r.Name(), r.Detail)
		}
		if r.Input == "" {
			t.Errorf("%s has empty Input", r.Name())
		}
	}
}

// TestExecuteSuite_Mismatch verifies a wrong expectation fails with a detail.
func TestExecuteSuite_Mismatch(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "double", ID: "wrong", Args: []any{3}, Expected: 7},
	}

	results := harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{}, harness.NullProgressReporter{}, io.Discard)

	if results[0].Passed {
		t.Fatal("mismatched case should fail")
	}
	if results[0].Detail == "" {
		t.Error("failed case should carry a diff detail")
	}
	if results[0].Actual != 6 {
		t.Errorf("Actual = %v, want 6", results[0].Actual)
	}
}

// TestExecuteSuite_ExpectedError verifies error-expectation matching.
func TestExecuteSuite_ExpectedError(t *testing.T) {
	registry := newTestRegistry(t)
	tests := []struct {
		name       string
		tc         suite.Case
		wantPassed bool
	}{
		{
			name:       "matching substring passes",
			tc:         suite.Case{Exercise: "explode", ID: "a", ExpectError: "meltdown"},
			wantPassed: true,
		},
		{
			name:       "non-matching substring fails",
			tc:         suite.Case{Exercise: "explode", ID: "b", ExpectError: "overflow"},
			wantPassed: false,
		},
		{
			name:       "value instead of error fails",
			tc:         suite.Case{Exercise: "double", ID: "c", Args: []any{1}, ExpectError: "meltdown"},
			wantPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := harness.ExecuteSuite(context.Background(), registry, []suite.Case{tt.tc},
				harness.Options{}, harness.NullProgressReporter{}, io.Discard)
			if results[0].Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v (detail: %s)", results[0].Passed, tt.wantPassed, results[0].Detail)
			}
		})
	}
}

// TestExecuteSuite_PanicRecovered verifies a panicking case is contained.
func TestExecuteSuite_PanicRecovered(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "panicky", ID: "boom", Expected: true},
		{Exercise: "double", ID: "after", Args: []any{5}, Expected: 10},
	}

	results := harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{Workers: 1}, harness.NullProgressReporter{}, io.Discard)

	if results[0].Passed {
		t.Fatal("panicking case should fail")
	}
	var panicErr *apperrors.PanicError
	if !errors.As(results[0].Err, &panicErr) {
		t.Fatalf("Err = %v, want *PanicError", results[0].Err)
	}
	if !results[1].Passed {
		t.Error("panic in one case should not poison the next")
	}
}

// TestExecuteSuite_CaseTimeout verifies the per-case wall-clock guard.
func TestExecuteSuite_CaseTimeout(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "sleepy", ID: "slow", Args: []any{200 * time.Millisecond}, Expected: true, Timeout: 20 * time.Millisecond},
	}

	start := time.Now()
	results := harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{}, harness.NullProgressReporter{}, io.Discard)
	elapsed := time.Since(start)

	if results[0].Passed {
		t.Fatal("timed-out case should fail")
	}
	var timeoutErr *apperrors.TimeoutError
	if !errors.As(results[0].Err, &timeoutErr) {
		t.Fatalf("Err = %v, want *TimeoutError", results[0].Err)
	}
	if elapsed >= 200*time.Millisecond {
		t.Errorf("runner waited %v for a timed-out case, guard is not working", elapsed)
	}

	// Let the stray sleeper finish before goleak's final check.
	time.Sleep(250 * time.Millisecond)
}

// TestExecuteSuite_UnknownExercise verifies dispatch failure handling.
func TestExecuteSuite_UnknownExercise(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "quicksort", ID: "missing", Expected: 1},
	}

	results := harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{}, harness.NullProgressReporter{}, io.Discard)

	if results[0].Passed {
		t.Fatal("unknown exercise should fail")
	}
	var cfgErr *apperrors.ConfigError
	if !errors.As(results[0].Err, &cfgErr) {
		t.Errorf("Err = %v, want *ConfigError", results[0].Err)
	}
}

// TestExecuteSuite_ContextCanceled verifies cancellation cuts the run short.
func TestExecuteSuite_ContextCanceled(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "sleepy", ID: "canceled", Args: []any{50 * time.Millisecond}, Expected: true},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := harness.ExecuteSuite(ctx, registry, cases,
		harness.Options{}, harness.NullProgressReporter{}, io.Discard)

	if results[0].Passed {
		t.Fatal("canceled case should fail")
	}
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", results[0].Err)
	}

	time.Sleep(80 * time.Millisecond)
}

// TestExecuteSuite_ProgressUpdates verifies one update is emitted per case.
func TestExecuteSuite_ProgressUpdates(t *testing.T) {
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "double", ID: "a", Args: []any{1}, Expected: 2},
		{Exercise: "double", ID: "b", Args: []any{2}, Expected: 4},
		{Exercise: "explode", ID: "c", ExpectError: "meltdown"},
	}

	var mu sync.Mutex
	seen := make(map[string]bool)
	reporter := harness.ProgressReporterFunc(func(wg *sync.WaitGroup, updates <-chan harness.ProgressUpdate, total int, out io.Writer) {
		defer wg.Done()
		if total != len(cases) {
			t.Errorf("reporter total = %d, want %d", total, len(cases))
		}
		for u := range updates {
			mu.Lock()
			seen[u.Name] = u.Passed
			mu.Unlock()
		}
	})

	harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{Workers: 3}, reporter, io.Discard)

	if len(seen) != len(cases) {
		t.Fatalf("received %d updates, want %d", len(seen), len(cases))
	}
	for _, tc := range cases {
		if _, ok := seen[tc.Name()]; !ok {
			t.Errorf("no update received for %s", tc.Name())
		}
	}
}

// TestExecuteSuite_MockReporter verifies the reporter contract with a
// generated mock standing in for the presentation layer.
func TestExecuteSuite_MockReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "double", ID: "a", Args: []any{4}, Expected: 8},
	}

	reporter := mocks.NewMockProgressReporter(ctrl)
	reporter.EXPECT().
		DisplayProgress(gomock.Any(), gomock.Any(), len(cases), io.Discard).
		Do(func(wg *sync.WaitGroup, updates <-chan harness.ProgressUpdate, total int, out io.Writer) {
			defer wg.Done()
			for range updates {
			}
		})

	harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{}, reporter, io.Discard)
}

// TestExecuteSuite_RecorderObservations verifies per-case metric hooks.
func TestExecuteSuite_RecorderObservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := newTestRegistry(t)
	cases := []suite.Case{
		{Exercise: "double", ID: "a", Args: []any{1}, Expected: 2},
		{Exercise: "double", ID: "b", Args: []any{2}, Expected: 5},
	}

	recorder := mocks.NewMockCaseRecorder(ctrl)
	recorder.EXPECT().ObserveCase("double", true, gomock.Any())
	recorder.EXPECT().ObserveCase("double", false, gomock.Any())

	harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{Recorder: recorder}, harness.NullProgressReporter{}, io.Discard)
}

// TestExecuteSuite_FloatEpsilon verifies per-case tolerance is honored.
func TestExecuteSuite_FloatEpsilon(t *testing.T) {
	registry := suite.NewRegistry()
	if err := registry.Register(suite.Exercise{
		Name:    "third",
		Summary: "returns an approximation of one third",
		Call: func(args []any) (any, error) {
			return 0.3333, nil
		},
	}); err != nil {
		t.Fatal(err)
	}

	cases := []suite.Case{
		{Exercise: "third", ID: "loose", Expected: 1.0 / 3.0, Epsilon: 1e-3},
		{Exercise: "third", ID: "tight", Expected: 1.0 / 3.0, Epsilon: 1e-9},
	}

	results := harness.ExecuteSuite(context.Background(), registry, cases,
		harness.Options{Workers: 1}, harness.NullProgressReporter{}, io.Discard)

	if !results[0].Passed {
		t.Errorf("loose tolerance should pass: %s", results[0].Detail)
	}
	if results[1].Passed {
		t.Error("tight tolerance should fail")
	}
}

// TestNullProgressReporter verifies the no-op reporter drains its channel.
func TestNullProgressReporter(t *testing.T) {
	updates := make(chan harness.ProgressUpdate, 4)
	for i := 0; i < 4; i++ {
		updates <- harness.ProgressUpdate{CaseIndex: i, Name: fmt.Sprintf("ex/%d", i)}
	}
	close(updates)

	var wg sync.WaitGroup
	wg.Add(1)
	harness.NullProgressReporter{}.DisplayProgress(&wg, updates, 4, io.Discard)
	wg.Wait()
}
