package suite

import (
	"github.com/algoforge/katarun/internal/exercise"
)

// Builtin returns the registry holding every exercise of the corpus, in the
// corpus's canonical order (easy, medium, hard).
func Builtin() *Registry {
	r := NewRegistry()
	for _, ex := range builtinExercises() {
		// Registration can only fail on a duplicate name, which would be a
		// programming error in this table.
		if err := r.Register(ex); err != nil {
			panic(err)
		}
	}
	return r
}

// builtinExercises adapts every exercise function to the dynamic CallFunc
// signature, validating arity and coercing argument types.
func builtinExercises() []Exercise {
	return []Exercise{
		{
			Name:    "fibonacci",
			Summary: "n-th Fibonacci number, F(0)=0, F(1)=1, negative input rejected",
			Call: func(args []any) (any, error) {
				if err := checkArity("fibonacci", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("fibonacci", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.Fibonacci(n)
			},
		},
		{
			Name:    "factorial",
			Summary: "n! for n >= 0, with 0! = 1",
			Call: func(args []any) (any, error) {
				if err := checkArity("factorial", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("factorial", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.Factorial(n)
			},
		},
		{
			Name:    "isPrime",
			Summary: "primality by trial division with even short-circuit",
			Call: func(args []any) (any, error) {
				if err := checkArity("isPrime", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("isPrime", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.IsPrime(n), nil
			},
		},
		{
			Name:    "sumDigits",
			Summary: "sum of decimal digits, sign ignored",
			Call: func(args []any) (any, error) {
				if err := checkArity("sumDigits", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("sumDigits", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.SumDigits(n), nil
			},
		},
		{
			Name:    "reverseInt",
			Summary: "decimal digit reversal, sign preserved",
			Call: func(args []any) (any, error) {
				if err := checkArity("reverseInt", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("reverseInt", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.ReverseInt(n), nil
			},
		},
		{
			Name:    "isPalindromeNumber",
			Summary: "decimal palindrome check, sign ignored",
			Call: func(args []any) (any, error) {
				if err := checkArity("isPalindromeNumber", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("isPalindromeNumber", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.IsPalindromeNumber(n), nil
			},
		},
		{
			Name:    "countSetBits",
			Summary: "population count via shift and mask",
			Call: func(args []any) (any, error) {
				if err := checkArity("countSetBits", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("countSetBits", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.CountSetBits(n), nil
			},
		},
		{
			Name:    "pow2",
			Summary: "2^n by iterative doubling",
			Call: func(args []any) (any, error) {
				if err := checkArity("pow2", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("pow2", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.Pow2(n)
			},
		},
		{
			Name:    "smallestDivisor",
			Summary: "smallest divisor > 1, n itself when prime",
			Call: func(args []any) (any, error) {
				if err := checkArity("smallestDivisor", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("smallestDivisor", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.SmallestDivisor(n)
			},
		},
		{
			Name:    "mergeSortedArrays",
			Summary: "stable two-pointer merge of two sorted sequences",
			Call: func(args []any) (any, error) {
				if err := checkArity("mergeSortedArrays", args, 2); err != nil {
					return nil, err
				}
				a, err := argIntSlice("mergeSortedArrays", args, 0)
				if err != nil {
					return nil, err
				}
				b, err := argIntSlice("mergeSortedArrays", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.MergeSortedArrays(a, b), nil
			},
		},
		{
			Name:    "isValidParentheses",
			Summary: "stack-based bracket matching over ()[]{}",
			Call: func(args []any) (any, error) {
				if err := checkArity("isValidParentheses", args, 1); err != nil {
					return nil, err
				}
				s, err := argString("isValidParentheses", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.IsValidParentheses(s), nil
			},
		},
		{
			Name:    "removeDuplicates",
			Summary: "in-place compaction of a sorted sequence, returns logical length",
			Call: func(args []any) (any, error) {
				if err := checkArity("removeDuplicates", args, 1); err != nil {
					return nil, err
				}
				nums, err := argIntSlice("removeDuplicates", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.RemoveDuplicates(nums), nil
			},
		},
		{
			Name:    "longestIncreasingSubsequence",
			Summary: "length of the longest strictly increasing subsequence (O(n²) DP)",
			Call: func(args []any) (any, error) {
				if err := checkArity("longestIncreasingSubsequence", args, 1); err != nil {
					return nil, err
				}
				nums, err := argIntSlice("longestIncreasingSubsequence", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.LongestIncreasingSubsequence(nums), nil
			},
		},
		{
			Name:    "wordBreak",
			Summary: "dictionary segmentation via prefix-feasibility DP",
			Call: func(args []any) (any, error) {
				if err := checkArity("wordBreak", args, 2); err != nil {
					return nil, err
				}
				s, err := argString("wordBreak", args, 0)
				if err != nil {
					return nil, err
				}
				dict, err := argStringSlice("wordBreak", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.WordBreak(s, dict), nil
			},
		},
		{
			Name:    "findMedianSortedArrays",
			Summary: "median of two sorted sequences via partition binary search",
			Call: func(args []any) (any, error) {
				if err := checkArity("findMedianSortedArrays", args, 2); err != nil {
					return nil, err
				}
				a, err := argIntSlice("findMedianSortedArrays", args, 0)
				if err != nil {
					return nil, err
				}
				b, err := argIntSlice("findMedianSortedArrays", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.FindMedianSortedArrays(a, b), nil
			},
		},
		{
			Name:    "solveNQueens",
			Summary: "all n-queens placements via backtracking",
			Call: func(args []any) (any, error) {
				if err := checkArity("solveNQueens", args, 1); err != nil {
					return nil, err
				}
				n, err := argInt("solveNQueens", args, 0)
				if err != nil {
					return nil, err
				}
				return exercise.SolveNQueens(n), nil
			},
		},
		{
			Name:    "minDistance",
			Summary: "Levenshtein edit distance (insert/delete/substitute DP)",
			Call: func(args []any) (any, error) {
				if err := checkArity("minDistance", args, 2); err != nil {
					return nil, err
				}
				a, err := argString("minDistance", args, 0)
				if err != nil {
					return nil, err
				}
				b, err := argString("minDistance", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.MinDistance(a, b), nil
			},
		},
		{
			Name:    "dijkstra",
			Summary: "single-source shortest paths with a min-priority queue",
			Call: func(args []any) (any, error) {
				if err := checkArity("dijkstra", args, 2); err != nil {
					return nil, err
				}
				graph, err := argGraph("dijkstra", args, 0)
				if err != nil {
					return nil, err
				}
				start, err := argInt("dijkstra", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.Dijkstra(graph, start)
			},
		},
		{
			Name:    "integrate",
			Summary: "trapezoid-rule integration of x² over [a, b]",
			Call: func(args []any) (any, error) {
				if err := checkArity("integrate", args, 3); err != nil {
					return nil, err
				}
				a, err := argFloat("integrate", args, 0)
				if err != nil {
					return nil, err
				}
				b, err := argFloat("integrate", args, 1)
				if err != nil {
					return nil, err
				}
				n, err := argInt("integrate", args, 2)
				if err != nil {
					return nil, err
				}
				return exercise.Integrate(a, b, n)
			},
		},
		{
			Name:    "modpow",
			Summary: "modular exponentiation by squaring",
			Call: func(args []any) (any, error) {
				if err := checkArity("modpow", args, 3); err != nil {
					return nil, err
				}
				base, err := argInt64("modpow", args, 0)
				if err != nil {
					return nil, err
				}
				exp, err := argInt64("modpow", args, 1)
				if err != nil {
					return nil, err
				}
				mod, err := argInt64("modpow", args, 2)
				if err != nil {
					return nil, err
				}
				return exercise.ModPow(base, exp, mod)
			},
		},
		{
			Name:    "sqrtNewton",
			Summary: "square root by Newton-Raphson iteration from x/2",
			Call: func(args []any) (any, error) {
				if err := checkArity("sqrtNewton", args, 2); err != nil {
					return nil, err
				}
				x, err := argFloat("sqrtNewton", args, 0)
				if err != nil {
					return nil, err
				}
				iterations, err := argInt("sqrtNewton", args, 1)
				if err != nil {
					return nil, err
				}
				return exercise.SqrtNewton(x, iterations)
			},
		},
	}
}
