package suite

import (
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "github.com/algoforge/katarun/internal/errors"
)

// Case is an immutable pairing of an input tuple and an expected result for
// one exercise. Cases are authored once (in the builtin corpus or a case
// file), never mutated, and discarded after the harness run.
type Case struct {
	// Exercise is the registry name of the exercise under test.
	Exercise string
	// ID identifies the case within its exercise (unique per exercise).
	ID string
	// Args is the ordered input tuple passed to the exercise adapter.
	Args []any
	// Expected is the expected result value. Ignored when ExpectError is set.
	Expected any
	// Epsilon overrides the default tolerance for floating-point comparison.
	// Zero means DefaultEpsilon.
	Epsilon float64
	// ExpectError, when non-empty, marks this as an error-path case: the
	// invocation must fail and the error text must contain this substring.
	ExpectError string
	// Timeout overrides the per-case wall-clock guard. Zero means the
	// configured default.
	Timeout time.Duration
}

// Name returns the fully qualified case name, e.g. "fibonacci/base-0".
func (c Case) Name() string {
	return c.Exercise + "/" + c.ID
}

// FormatArgs renders the input tuple for failure reports.
func (c Case) FormatArgs() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		switch v := a.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// CallFunc invokes an exercise with a dynamically typed argument tuple.
// Implementations validate arity and argument types, returning an
// apperrors.ArgumentError for malformed invocations.
type CallFunc func(args []any) (any, error)

// Exercise is a registry entry: a named, dynamically invocable pure function.
type Exercise struct {
	// Name is the registry key, matching the original corpus naming
	// (e.g. "isPrime", "findMedianSortedArrays").
	Name string
	// Summary is a one-line description shown by the list command.
	Summary string
	// Call invokes the exercise.
	Call CallFunc
}

// Registry maps exercise names to their adapters while preserving
// registration order for deterministic listing and execution.
type Registry struct {
	order  []string
	byName map[string]Exercise
}

// NewRegistry creates an empty exercise registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Exercise)}
}

// Register adds an exercise to the registry.
//
// Returns:
//   - error: A ConfigError if the name is empty, the Call is nil, or the
//     name is already registered.
func (r *Registry) Register(ex Exercise) error {
	if ex.Name == "" {
		return apperrors.NewConfigError("exercise name must not be empty")
	}
	if ex.Call == nil {
		return apperrors.NewConfigError("exercise %q has no call adapter", ex.Name)
	}
	if _, exists := r.byName[ex.Name]; exists {
		return apperrors.NewConfigError("exercise %q registered twice", ex.Name)
	}
	r.order = append(r.order, ex.Name)
	r.byName[ex.Name] = ex
	return nil
}

// Get looks up an exercise by name.
func (r *Registry) Get(name string) (Exercise, bool) {
	ex, ok := r.byName[name]
	return ex, ok
}

// Names returns exercise names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered exercises.
func (r *Registry) Len() int {
	return len(r.order)
}

// FilterCases returns the cases whose exercise is in names, preserving case
// order. An empty filter selects everything.
//
// Returns:
//   - []Case: The selected cases.
//   - error: A ConfigError naming the first filter entry that matches no
//     registered exercise.
func (r *Registry) FilterCases(cases []Case, names []string) ([]Case, error) {
	if len(names) == 0 {
		return cases, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := r.byName[name]; !ok {
			return nil, apperrors.NewConfigError("unknown exercise %q (use -list to see available exercises)", name)
		}
		wanted[name] = true
	}
	var selected []Case
	for _, c := range cases {
		if wanted[c.Exercise] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

// ValidateCases checks that every case references a registered exercise and
// that case IDs are unique within their exercise.
func (r *Registry) ValidateCases(cases []Case) error {
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if _, ok := r.byName[c.Exercise]; !ok {
			return apperrors.NewConfigError("case %q references unknown exercise %q", c.ID, c.Exercise)
		}
		if c.ID == "" {
			return apperrors.NewConfigError("exercise %q has a case with an empty id", c.Exercise)
		}
		key := c.Name()
		if seen[key] {
			return apperrors.NewConfigError("duplicate case %q", key)
		}
		seen[key] = true
	}
	return nil
}

// CountByExercise returns the number of cases per exercise, plus the sorted
// list of exercise names present in the case list.
func CountByExercise(cases []Case) (map[string]int, []string) {
	counts := make(map[string]int)
	for _, c := range cases {
		counts[c.Exercise]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return counts, names
}
