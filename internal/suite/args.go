package suite

import (
	"fmt"
	"math"
	"reflect"

	apperrors "github.com/algoforge/katarun/internal/errors"
	"github.com/algoforge/katarun/internal/exercise"
)

// The arg* helpers implement the typed boundary of the dynamic dispatch
// layer. Case files and the builtin corpus supply arguments as []any; these
// helpers coerce each position to the exercise's declared parameter type or
// fail with a structured ArgumentError. YAML integers arrive as int, YAML
// floats as float64, so the numeric helpers accept both where lossless.

// checkArity verifies the argument count of an invocation.
func checkArity(exerciseName string, args []any, want int) error {
	if len(args) != want {
		noun := "arguments"
		if want == 1 {
			noun = "argument"
		}
		return apperrors.ArgumentError{
			Exercise: exerciseName,
			Index:    -1,
			Want:     fmt.Sprintf("%d %s", want, noun),
			Got:      fmt.Sprintf("%d", len(args)),
		}
	}
	return nil
}

// argInt coerces args[i] to int. Accepts any signed or unsigned integer
// kind, and float64 values that are mathematically integral (YAML authors
// writing "10" vs "10.0" should not change case semantics).
func argInt(exerciseName string, args []any, i int) (int, error) {
	v := args[i]
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, argTypeError(exerciseName, i, "int", v)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) {
			return 0, argTypeError(exerciseName, i, "int", v)
		}
		return int(f), nil
	default:
		return 0, argTypeError(exerciseName, i, "int", v)
	}
}

// argInt64 coerces args[i] to int64 with the same rules as argInt.
func argInt64(exerciseName string, args []any, i int) (int64, error) {
	n, err := argInt(exerciseName, args, i)
	return int64(n), err
}

// argFloat coerces args[i] to float64, accepting integer kinds as well.
func argFloat(exerciseName string, args []any, i int) (float64, error) {
	v := args[i]
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	default:
		return 0, argTypeError(exerciseName, i, "float64", v)
	}
}

// argString coerces args[i] to string.
func argString(exerciseName string, args []any, i int) (string, error) {
	if s, ok := args[i].(string); ok {
		return s, nil
	}
	return "", argTypeError(exerciseName, i, "string", args[i])
}

// argIntSlice coerces args[i] to []int. Accepts []int directly or []any of
// integer values (the YAML decoding of a sequence). The returned slice is
// always a fresh copy so exercises mutating their input cannot corrupt a
// recorded case.
func argIntSlice(exerciseName string, args []any, i int) ([]int, error) {
	switch v := args[i].(type) {
	case []int:
		return append([]int(nil), v...), nil
	case []any:
		out := make([]int, len(v))
		for j, elem := range v {
			n, err := argInt(exerciseName, []any{elem}, 0)
			if err != nil {
				return nil, argTypeError(exerciseName, i, "[]int", args[i])
			}
			out[j] = n
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, argTypeError(exerciseName, i, "[]int", args[i])
	}
}

// argStringSlice coerces args[i] to []string.
func argStringSlice(exerciseName string, args []any, i int) ([]string, error) {
	switch v := args[i].(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, len(v))
		for j, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, argTypeError(exerciseName, i, "[]string", args[i])
			}
			out[j] = s
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, argTypeError(exerciseName, i, "[]string", args[i])
	}
}

// argGraph coerces args[i] to a weighted adjacency list. Accepts
// [][]exercise.Edge directly or the case-file form: a sequence of vertices,
// each a sequence of [to, weight] pairs.
func argGraph(exerciseName string, args []any, i int) ([][]exercise.Edge, error) {
	switch v := args[i].(type) {
	case [][]exercise.Edge:
		graph := make([][]exercise.Edge, len(v))
		for u, edges := range v {
			graph[u] = append([]exercise.Edge(nil), edges...)
		}
		return graph, nil
	case []any:
		graph := make([][]exercise.Edge, len(v))
		for u, vertexAny := range v {
			if vertexAny == nil {
				continue
			}
			vertex, ok := vertexAny.([]any)
			if !ok {
				return nil, argTypeError(exerciseName, i, "adjacency list", args[i])
			}
			edges := make([]exercise.Edge, 0, len(vertex))
			for _, edgeAny := range vertex {
				pair, ok := edgeAny.([]any)
				if !ok || len(pair) != 2 {
					return nil, argTypeError(exerciseName, i, "[to, weight] edge pair", edgeAny)
				}
				to, err := argInt(exerciseName, pair, 0)
				if err != nil {
					return nil, argTypeError(exerciseName, i, "[to, weight] edge pair", edgeAny)
				}
				weight, err := argInt(exerciseName, pair, 1)
				if err != nil {
					return nil, argTypeError(exerciseName, i, "[to, weight] edge pair", edgeAny)
				}
				edges = append(edges, exercise.Edge{To: to, Weight: weight})
			}
			graph[u] = edges
		}
		return graph, nil
	default:
		return nil, argTypeError(exerciseName, i, "adjacency list", args[i])
	}
}

// argTypeError builds the ArgumentError for a type mismatch at position i.
func argTypeError(exerciseName string, i int, want string, got any) error {
	return apperrors.ArgumentError{
		Exercise: exerciseName,
		Index:    i,
		Want:     want,
		Got:      fmt.Sprintf("%T", got),
	}
}
