package exercise

import (
	"errors"
	"math"
	"testing"
)

func TestFibonacci(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}, {5, 5},
		{6, 8}, {7, 13}, {10, 55}, {15, 610}, {20, 6765}, {45, 1134903170},
	}
	for _, tt := range tests {
		got, err := Fibonacci(tt.n)
		if err != nil {
			t.Fatalf("Fibonacci(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFibonacci_RejectsNegative(t *testing.T) {
	t.Parallel()
	if _, err := Fibonacci(-1); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Fibonacci(-1) error = %v, want ErrNegativeInput", err)
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{0, 1}, {1, 1}, {5, 120}, {7, 5040}, {10, 3628800},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if _, err := Factorial(-3); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Factorial(-3) error = %v, want ErrNegativeInput", err)
	}
}

func TestIsPrime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want bool
	}{
		{-7, false}, {0, false}, {1, false}, {2, true}, {3, true},
		{4, false}, {15, false}, {17, true}, {25, false}, {97, true},
		{7919, true}, {7920, false},
	}
	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// TestIsPrime_TrialDivisionOracle checks IsPrime against a naive divisor
// scan for every value up to 50000, an exhaustive (bounded) form of the
// trial-division ground-truth property.
func TestIsPrime_TrialDivisionOracle(t *testing.T) {
	t.Parallel()
	naive := func(n int) bool {
		if n < 2 {
			return false
		}
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}
	for n := 0; n <= 50000; n++ {
		if got, want := IsPrime(n), naive(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, oracle says %v", n, got, want)
		}
	}
}

func TestPow2(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{0, 1}, {1, 2}, {5, 32}, {10, 1024}, {62, 1 << 62},
	}
	for _, tt := range tests {
		got, err := Pow2(tt.n)
		if err != nil {
			t.Fatalf("Pow2(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Pow2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if _, err := Pow2(-1); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Pow2(-1) error = %v, want ErrNegativeInput", err)
	}
	if _, err := Pow2(63); !errors.Is(err, ErrOverflow) {
		t.Errorf("Pow2(63) error = %v, want ErrOverflow", err)
	}
}

func TestSmallestDivisor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{2, 2}, {4, 2}, {9, 3}, {15, 3}, {17, 17}, {49, 7}, {1000003, 1000003},
	}
	for _, tt := range tests {
		got, err := SmallestDivisor(tt.n)
		if err != nil {
			t.Fatalf("SmallestDivisor(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("SmallestDivisor(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if _, err := SmallestDivisor(1); !errors.Is(err, ErrBelowDomain) {
		t.Errorf("SmallestDivisor(1) error = %v, want ErrBelowDomain", err)
	}
}

func TestModPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		base, exp, mod int64
		want           int64
	}{
		{2, 10, 1000, 24},
		{2, 10, 1 << 20, 1024},
		{3, 0, 7, 1},
		{10, 9, 6, 4},
		{5, 117, 19, 1}, // Fermat: 5^18 ≡ 1 mod 19, 117 = 6*18+9, 5^9 mod 19 = 1
		{-2, 3, 5, 2},   // negative base normalized into [0, mod)
		{7, 2, 1, 0},    // everything is 0 mod 1
	}
	for _, tt := range tests {
		got, err := ModPow(tt.base, tt.exp, tt.mod)
		if err != nil {
			t.Fatalf("ModPow(%d, %d, %d) returned error: %v", tt.base, tt.exp, tt.mod, err)
		}
		if got != tt.want {
			t.Errorf("ModPow(%d, %d, %d) = %d, want %d", tt.base, tt.exp, tt.mod, got, tt.want)
		}
	}

	if _, err := ModPow(2, -1, 7); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("ModPow negative exponent error = %v, want ErrNegativeInput", err)
	}
	if _, err := ModPow(2, 3, 0); !errors.Is(err, ErrBelowDomain) {
		t.Errorf("ModPow zero modulus error = %v, want ErrBelowDomain", err)
	}
}

func TestSqrtNewton(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x          float64
		iterations int
		want       float64
		tolerance  float64
	}{
		{0, 10, 0, 0},
		{4, 20, 2, 1e-9},
		{2, 30, math.Sqrt2, 1e-9},
		{10000, 40, 100, 1e-6},
	}
	for _, tt := range tests {
		got, err := SqrtNewton(tt.x, tt.iterations)
		if err != nil {
			t.Fatalf("SqrtNewton(%g, %d) returned error: %v", tt.x, tt.iterations, err)
		}
		if math.Abs(got-tt.want) > tt.tolerance {
			t.Errorf("SqrtNewton(%g, %d) = %g, want %g ± %g", tt.x, tt.iterations, got, tt.want, tt.tolerance)
		}
	}

	if _, err := SqrtNewton(-1, 5); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("SqrtNewton(-1) error = %v, want ErrNegativeInput", err)
	}
}

func TestIntegrate(t *testing.T) {
	t.Parallel()
	// ∫₀¹ x² dx = 1/3; the trapezoid rule overestimates a convex function,
	// with error h²(b-a)/6 for f(x)=x².
	got, err := Integrate(0, 1, 1000)
	if err != nil {
		t.Fatalf("Integrate(0, 1, 1000) returned error: %v", err)
	}
	if math.Abs(got-1.0/3.0) > 1e-6 {
		t.Errorf("Integrate(0, 1, 1000) = %g, want ≈ 1/3", got)
	}

	// Exact hand-computed value for a coarse grid over [0,2] with h=0.5.
	got, err = Integrate(0, 2, 4)
	if err != nil {
		t.Fatalf("Integrate(0, 2, 4) returned error: %v", err)
	}
	want := 0.5 * (0.5*(0.0+4.0) + 0.25 + 1.0 + 2.25)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Integrate(0, 2, 4) = %g, want %g", got, want)
	}

	if _, err := Integrate(0, 1, 0); !errors.Is(err, ErrBelowDomain) {
		t.Errorf("Integrate with zero steps error = %v, want ErrBelowDomain", err)
	}
}
