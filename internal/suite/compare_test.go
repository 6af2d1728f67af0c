package suite

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		expected any
		actual   any
		epsilon  float64
		want     bool
	}{
		{"equal ints", 55, 55, 0, true},
		{"different ints", 55, 54, 0, false},
		{"int vs int64 by value", 24, int64(24), 0, true},
		{"bools", true, true, 0, true},
		{"bool mismatch", true, false, 0, false},
		{"strings", "abc", "abc", 0, true},
		{"float within default epsilon", 2.0, 2.0 + 1e-12, 0, true},
		{"float outside default epsilon", 2.0, 2.001, 0, false},
		{"float within custom epsilon", 1.0 / 3.0, 0.3333335, 1e-6, true},
		{"int expected vs float actual", 2, 2.0, 0, true},
		{"float expected vs int actual", 5.0, int64(5), 0, true},
		{"int slices", []int{1, 2, 3}, []int{1, 2, 3}, 0, true},
		{"int slice mismatch", []int{1, 2, 3}, []int{1, 2, 4}, 0, false},
		{"length mismatch", []int{1}, []int{1, 2}, 0, false},
		{"untyped vs typed slice", []any{1, 2}, []int{1, 2}, 0, true},
		{"nested string slices", [][]string{{"Q"}}, [][]string{{"Q"}}, 0, true},
		{"nil vs empty slice", nil, []int{}, 0, true},
		{"empty nested vs empty nested", [][]string{}, [][]string{}, 0, true},
		{"nil vs non-empty", nil, []int{1}, 0, false},
		{"type mismatch", "1", 1, 0, false},
		{"NaN matches NaN", math.NaN(), math.NaN(), 0, true},
		{"Inf matches same Inf", math.Inf(1), math.Inf(1), 0, true},
		{"Inf sign matters", math.Inf(1), math.Inf(-1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Equal(tt.expected, tt.actual, tt.epsilon); got != tt.want {
				t.Errorf("Equal(%v, %v, %g) = %v, want %v", tt.expected, tt.actual, tt.epsilon, got, tt.want)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()
	if diff := Diff([]int{1, 2}, []int{1, 2}); diff != "" {
		t.Errorf("expected empty diff for equal values, got:\n%s", diff)
	}
	if diff := Diff([]int{1, 2}, []int{1, 3}); diff == "" {
		t.Error("expected non-empty diff for different values")
	}
}
