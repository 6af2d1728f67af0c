package exercise

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by exercises with a restricted input domain.
var (
	// ErrNegativeInput indicates an argument that must be non-negative.
	ErrNegativeInput = errors.New("negative input")
	// ErrOverflow indicates a result that does not fit in the declared
	// numeric width.
	ErrOverflow = errors.New("result overflows numeric width")
	// ErrBelowDomain indicates an argument below the exercise's minimum.
	ErrBelowDomain = errors.New("input below exercise domain")
)

// Fibonacci returns the n-th Fibonacci number with F(0)=0 and F(1)=1,
// computed iteratively in O(n) time and O(1) space.
//
// Negative input is rejected with ErrNegativeInput; the corpus historically
// disagreed between clamping and rejecting, and rejection is the single
// policy kept here.
//
// Parameters:
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - int: The value of F(n).
//   - error: ErrNegativeInput if n < 0.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci(%d): %w", n, ErrNegativeInput)
	}
	if n == 0 {
		return 0, nil
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

// Factorial returns n! for n >= 0, with 0! = 1.
//
// Parameters:
//   - n: The value whose factorial is computed.
//
// Returns:
//   - int: The value of n!.
//   - error: ErrNegativeInput if n < 0.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrNegativeInput)
	}
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}
	return res, nil
}

// IsPrime reports whether n is prime. Values below 2 are not prime. Even
// numbers short-circuit, then trial division runs over odd candidates up
// to the square root of n.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Pow2 returns 2^n by iterative doubling.
//
// Parameters:
//   - n: The exponent.
//
// Returns:
//   - int: The value of 2^n.
//   - error: ErrNegativeInput if n < 0, ErrOverflow if 2^n does not fit in
//     a signed 64-bit integer (n > 62).
func Pow2(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("pow2(%d): %w", n, ErrNegativeInput)
	}
	if n > 62 {
		return 0, fmt.Errorf("pow2(%d): %w", n, ErrOverflow)
	}
	res := 1
	for ; n > 0; n-- {
		res *= 2
	}
	return res, nil
}

// SmallestDivisor returns the smallest divisor greater than 1 of n, for
// n >= 2. If n is prime, n itself is returned.
//
// Parameters:
//   - n: The value whose smallest non-trivial divisor is sought.
//
// Returns:
//   - int: The smallest divisor > 1.
//   - error: ErrBelowDomain if n < 2.
func SmallestDivisor(n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("smallestDivisor(%d): %w", n, ErrBelowDomain)
	}
	if n%2 == 0 {
		return 2, nil
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return i, nil
		}
	}
	return n, nil
}

// ModPow computes base^exp mod mod using exponentiation by squaring with a
// modular reduction at every step, keeping intermediate values bounded.
//
// Parameters:
//   - base: The base of the exponentiation.
//   - exp: The non-negative exponent.
//   - mod: The positive modulus.
//
// Returns:
//   - int64: base^exp mod mod, in [0, mod).
//   - error: ErrNegativeInput if exp < 0, ErrBelowDomain if mod <= 0.
func ModPow(base, exp, mod int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("modpow: exponent %d: %w", exp, ErrNegativeInput)
	}
	if mod <= 0 {
		return 0, fmt.Errorf("modpow: modulus %d: %w", mod, ErrBelowDomain)
	}
	result := int64(1)
	base %= mod
	if base < 0 {
		base += mod
	}
	for exp > 0 {
		if exp%2 == 1 {
			result = (result * base) % mod
		}
		base = (base * base) % mod
		exp /= 2
	}
	return result, nil
}

// SqrtNewton approximates the square root of x using Newton-Raphson
// iteration starting from the initial guess x/2.
//
// The iteration count is fixed by the caller rather than driven by a
// convergence test, matching the exercise statement.
//
// Parameters:
//   - x: The non-negative value whose square root is approximated.
//   - iterations: The number of Newton steps to apply.
//
// Returns:
//   - float64: The approximation after the requested iterations.
//   - error: ErrNegativeInput if x < 0.
func SqrtNewton(x float64, iterations int) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("sqrtNewton(%g): %w", x, ErrNegativeInput)
	}
	if x == 0 {
		return 0, nil
	}
	guess := x / 2.0
	for i := 0; i < iterations; i++ {
		guess = (guess + x/guess) / 2.0
	}
	return guess, nil
}

// Integrate approximates the integral of f(x) = x² over [a, b] using the
// composite trapezoid rule with n uniform steps: the endpoint samples are
// half-weighted and interior samples fully weighted, all scaled by the step
// width h = (b-a)/n.
//
// Parameters:
//   - a: Lower integration bound.
//   - b: Upper integration bound.
//   - n: Number of steps; must be positive.
//
// Returns:
//   - float64: The trapezoid-rule approximation.
//   - error: ErrBelowDomain if n <= 0.
func Integrate(a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("integrate: steps %d: %w", n, ErrBelowDomain)
	}
	h := (b - a) / float64(n)
	sum := 0.5 * (a*a + b*b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		sum += x * x
	}
	return sum * h, nil
}
