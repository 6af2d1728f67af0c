package suite

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// DefaultEpsilon is the tolerance used for floating-point comparison when a
// case does not set its own.
const DefaultEpsilon = 1e-9

// Equal reports whether an actual result matches the expected value.
//
// Integral, boolean, string and sequence results use exact equality;
// float64 results (or comparisons where either side is a float) use
// tolerance-bounded equality |actual-expected| <= epsilon. Both sides are
// first reduced to a canonical form so that a case file's []any sequences
// compare equal to the typed slices exercises return, and differently sized
// integer kinds compare by value.
//
// Parameters:
//   - expected: The recorded expected value.
//   - actual: The value the exercise returned.
//   - epsilon: Float tolerance; 0 means DefaultEpsilon.
//
// Returns:
//   - bool: true when the values match.
func Equal(expected, actual any, epsilon float64) bool {
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}
	return equalCanonical(canonical(expected), canonical(actual), epsilon)
}

// Diff renders a human-readable diff between expected and actual in go-cmp
// format, using the same canonical forms as Equal. Returns "" for equal
// values.
func Diff(expected, actual any) string {
	return cmp.Diff(canonical(expected), canonical(actual))
}

// canonical reduces a value to the comparison domain: int64 for all integer
// kinds, float64 for floats, []any for any slice or array, and bool/string
// unchanged. nil stays nil.
func canonical(v any) any {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x
	case float64:
		return x
	case float32:
		return float64(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = canonical(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}

// equalCanonical compares two canonical values. Mixed int64/float64 pairs
// are compared as floats under the tolerance, so a case file may record an
// integral expected value for a float-returning exercise.
func equalCanonical(expected, actual any, epsilon float64) bool {
	if expected == nil || actual == nil {
		// An empty sequence and nil are interchangeable in case authoring.
		return isNilOrEmpty(expected) && isNilOrEmpty(actual)
	}

	switch e := expected.(type) {
	case bool:
		a, ok := actual.(bool)
		return ok && e == a
	case string:
		a, ok := actual.(string)
		return ok && e == a
	case int64:
		switch a := actual.(type) {
		case int64:
			return e == a
		case float64:
			return math.Abs(float64(e)-a) <= epsilon
		}
		return false
	case float64:
		switch a := actual.(type) {
		case float64:
			return floatsClose(e, a, epsilon)
		case int64:
			return math.Abs(e-float64(a)) <= epsilon
		}
		return false
	case []any:
		a, ok := actual.([]any)
		if !ok || len(e) != len(a) {
			return false
		}
		for i := range e {
			if !equalCanonical(e[i], a[i], epsilon) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(expected, actual)
	}
}

// floatsClose applies tolerance-bounded equality, treating two NaNs and two
// equal infinities as matching.
func floatsClose(e, a, epsilon float64) bool {
	if math.IsNaN(e) || math.IsNaN(a) {
		return math.IsNaN(e) && math.IsNaN(a)
	}
	if math.IsInf(e, 0) || math.IsInf(a, 0) {
		return e == a
	}
	return math.Abs(e-a) <= epsilon
}

// isNilOrEmpty reports whether v is nil or a zero-length canonical sequence.
func isNilOrEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.([]any)
	return ok && len(s) == 0
}
