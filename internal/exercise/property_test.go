package exercise

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFibonacciRecurrence_PropertyBased verifies the defining recurrence of
// the Fibonacci sequence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
//
// The fixed base cases F(0)=0 and F(1)=1 are pinned in TestFibonacci.
func TestFibonacciRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n int) bool {
			fn, err := Fibonacci(n)
			if err != nil {
				return false
			}
			fn1, err := Fibonacci(n - 1)
			if err != nil {
				return false
			}
			fn2, err := Fibonacci(n - 2)
			if err != nil {
				return false
			}
			return fn == fn1+fn2
		},
		gen.IntRange(2, 90),
	))

	properties.TestingRun(t)
}

// TestFactorialRecurrence_PropertyBased verifies n! = n × (n-1)! for n >= 1.
func TestFactorialRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("n! = n * (n-1)!", prop.ForAll(
		func(n int) bool {
			fn, err := Factorial(n)
			if err != nil {
				return false
			}
			fn1, err := Factorial(n - 1)
			if err != nil {
				return false
			}
			return fn == n*fn1
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

// TestMergeSortedArrays_PropertyBased verifies the two defining properties
// of the merge: the output is sorted, and it is a permutation of the
// concatenation of both inputs.
func TestMergeSortedArrays_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	sortedSlice := gen.SliceOf(gen.IntRange(-1000, 1000)).Map(func(s []int) []int {
		sort.Ints(s)
		return s
	})

	properties.Property("output is sorted and a permutation of the inputs", prop.ForAll(
		func(a, b []int) bool {
			got := MergeSortedArrays(a, b)
			if len(got) != len(a)+len(b) {
				return false
			}
			if !sort.IntsAreSorted(got) {
				return false
			}
			want := append(append([]int{}, a...), b...)
			sort.Ints(want)
			for i := range want {
				if got[i] != want[i] {
					return false
				}
			}
			return true
		},
		sortedSlice,
		sortedSlice,
	))

	properties.TestingRun(t)
}

// TestReverseInt_PropertyBased verifies the round-trip property on inputs
// without trailing zeros, and sign preservation in general.
func TestReverseInt_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("round trip holds without trailing zeros", prop.ForAll(
		func(n int) bool {
			if n != 0 && n%10 == 0 {
				// Trailing zeros are lost in reversal; round trip does not apply.
				return true
			}
			return ReverseInt(ReverseInt(n)) == n
		},
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.Property("sign is preserved", prop.ForAll(
		func(n int) bool {
			rev := ReverseInt(n)
			switch {
			case n > 0:
				return rev >= 0
			case n < 0:
				return rev <= 0
			default:
				return rev == 0
			}
		},
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.TestingRun(t)
}

// TestModPow_PropertyBased cross-checks the square-and-multiply result
// against a naive multiply loop for small exponents.
func TestModPow_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("matches naive modular multiplication", prop.ForAll(
		func(base int64, exp int64, mod int64) bool {
			got, err := ModPow(base, exp, mod)
			if err != nil {
				return false
			}
			want := int64(1)
			b := base % mod
			if b < 0 {
				b += mod
			}
			for i := int64(0); i < exp; i++ {
				want = (want * b) % mod
			}
			return got == want
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(0, 64),
		gen.Int64Range(1, 100000),
	))

	properties.TestingRun(t)
}
