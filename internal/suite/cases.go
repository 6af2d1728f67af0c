package suite

import "github.com/algoforge/katarun/internal/exercise"

// BuiltinCases returns the recorded case corpus: the (input, expected)
// pairs from the original exercise statements plus a handful of boundary
// and error-path cases. The returned slice is a fresh copy on every call;
// cases themselves are never mutated by the harness.
func BuiltinCases() []Case {
	cases := []Case{
		// fibonacci
		{Exercise: "fibonacci", ID: "base-0", Args: []any{0}, Expected: 0},
		{Exercise: "fibonacci", ID: "small-5", Args: []any{5}, Expected: 5},
		{Exercise: "fibonacci", ID: "medium-10", Args: []any{10}, Expected: 55},
		{Exercise: "fibonacci", ID: "larger-20", Args: []any{20}, Expected: 6765},
		{Exercise: "fibonacci", ID: "negative-rejected", Args: []any{-1}, ExpectError: "negative input"},

		// factorial
		{Exercise: "factorial", ID: "base-0", Args: []any{0}, Expected: 1},
		{Exercise: "factorial", ID: "small-5", Args: []any{5}, Expected: 120},
		{Exercise: "factorial", ID: "medium-7", Args: []any{7}, Expected: 5040},
		{Exercise: "factorial", ID: "negative-rejected", Args: []any{-4}, ExpectError: "negative input"},

		// isPrime
		{Exercise: "isPrime", ID: "two", Args: []any{2}, Expected: true},
		{Exercise: "isPrime", ID: "composite-15", Args: []any{15}, Expected: false},
		{Exercise: "isPrime", ID: "prime-17", Args: []any{17}, Expected: true},
		{Exercise: "isPrime", ID: "one-not-prime", Args: []any{1}, Expected: false},

		// sumDigits
		{Exercise: "sumDigits", ID: "zero", Args: []any{0}, Expected: 0},
		{Exercise: "sumDigits", ID: "simple-123", Args: []any{123}, Expected: 6},
		{Exercise: "sumDigits", ID: "with-zeros-1009", Args: []any{1009}, Expected: 10},
		{Exercise: "sumDigits", ID: "negative-abs", Args: []any{-123}, Expected: 6},

		// reverseInt
		{Exercise: "reverseInt", ID: "simple-123", Args: []any{123}, Expected: 321},
		{Exercise: "reverseInt", ID: "negative-trailing-zero", Args: []any{-120}, Expected: -21},
		{Exercise: "reverseInt", ID: "zero", Args: []any{0}, Expected: 0},

		// isPalindromeNumber
		{Exercise: "isPalindromeNumber", ID: "palindrome-121", Args: []any{121}, Expected: true},
		{Exercise: "isPalindromeNumber", ID: "negative-sign-ignored", Args: []any{-121}, Expected: true},
		{Exercise: "isPalindromeNumber", ID: "not-palindrome-123", Args: []any{123}, Expected: false},

		// countSetBits
		{Exercise: "countSetBits", ID: "zero", Args: []any{0}, Expected: 0},
		{Exercise: "countSetBits", ID: "seven", Args: []any{7}, Expected: 3},
		{Exercise: "countSetBits", ID: "ten-ones-1023", Args: []any{1023}, Expected: 10},

		// pow2
		{Exercise: "pow2", ID: "base-0", Args: []any{0}, Expected: 1},
		{Exercise: "pow2", ID: "small-5", Args: []any{5}, Expected: 32},
		{Exercise: "pow2", ID: "medium-10", Args: []any{10}, Expected: 1024},
		{Exercise: "pow2", ID: "overflow-rejected", Args: []any{63}, ExpectError: "overflows"},

		// smallestDivisor
		{Exercise: "smallestDivisor", ID: "smallest-prime", Args: []any{2}, Expected: 2},
		{Exercise: "smallestDivisor", ID: "odd-composite-15", Args: []any{15}, Expected: 3},
		{Exercise: "smallestDivisor", ID: "prime-returns-itself", Args: []any{17}, Expected: 17},

		// mergeSortedArrays
		{Exercise: "mergeSortedArrays", ID: "interleaved", Args: []any{[]int{1, 3, 5}, []int{2, 4, 6}}, Expected: []int{1, 2, 3, 4, 5, 6}},
		{Exercise: "mergeSortedArrays", ID: "left-empty", Args: []any{[]int{}, []int{1, 2}}, Expected: []int{1, 2}},
		{Exercise: "mergeSortedArrays", ID: "duplicates", Args: []any{[]int{1, 2, 2}, []int{2, 3}}, Expected: []int{1, 2, 2, 2, 3}},

		// isValidParentheses
		{Exercise: "isValidParentheses", ID: "empty-valid", Args: []any{""}, Expected: true},
		{Exercise: "isValidParentheses", ID: "leftover-opener", Args: []any{"(()"}, Expected: false},
		{Exercise: "isValidParentheses", ID: "all-kinds", Args: []any{"()[]{}"}, Expected: true},
		{Exercise: "isValidParentheses", ID: "cross-nesting", Args: []any{"([)]"}, Expected: false},

		// removeDuplicates
		{Exercise: "removeDuplicates", ID: "simple", Args: []any{[]int{1, 1, 2}}, Expected: 2},
		{Exercise: "removeDuplicates", ID: "empty", Args: []any{[]int{}}, Expected: 0},
		{Exercise: "removeDuplicates", ID: "longer-runs", Args: []any{[]int{0, 0, 1, 1, 1, 2, 2, 3, 3, 4}}, Expected: 5},

		// longestIncreasingSubsequence
		{Exercise: "longestIncreasingSubsequence", ID: "classic", Args: []any{[]int{10, 9, 2, 5, 3, 7, 101, 18}}, Expected: 4},
		{Exercise: "longestIncreasingSubsequence", ID: "empty", Args: []any{[]int{}}, Expected: 0},
		{Exercise: "longestIncreasingSubsequence", ID: "already-increasing", Args: []any{[]int{1, 2, 3}}, Expected: 3},

		// wordBreak
		{Exercise: "wordBreak", ID: "simple-split", Args: []any{"leetcode", []string{"leet", "code"}}, Expected: true},
		{Exercise: "wordBreak", ID: "no-segmentation", Args: []any{"catsandog", []string{"cats", "dog", "sand", "and", "cat"}}, Expected: false},
		{Exercise: "wordBreak", ID: "empty-string", Args: []any{"", []string{"a"}}, Expected: true},

		// findMedianSortedArrays
		{Exercise: "findMedianSortedArrays", ID: "odd-total", Args: []any{[]int{1, 3}, []int{2}}, Expected: 2.0},
		{Exercise: "findMedianSortedArrays", ID: "even-total", Args: []any{[]int{1, 2}, []int{3, 4}}, Expected: 2.5},
		{Exercise: "findMedianSortedArrays", ID: "one-empty", Args: []any{[]int{}, []int{5}}, Expected: 5.0},

		// solveNQueens
		{Exercise: "solveNQueens", ID: "one-queen", Args: []any{1}, Expected: [][]string{{"Q"}}},
		{Exercise: "solveNQueens", ID: "no-solution-2", Args: []any{2}, Expected: [][]string{}},
		{
			Exercise: "solveNQueens", ID: "four-queens", Args: []any{4},
			Expected: [][]string{
				{".Q..", "...Q", "Q...", "..Q."},
				{"..Q.", "Q...", "...Q", ".Q.."},
			},
		},

		// minDistance
		{Exercise: "minDistance", ID: "horse-ros", Args: []any{"horse", "ros"}, Expected: 3},
		{Exercise: "minDistance", ID: "from-empty", Args: []any{"", "abc"}, Expected: 3},
		{Exercise: "minDistance", ID: "identical", Args: []any{"same", "same"}, Expected: 0},

		// dijkstra
		{
			Exercise: "dijkstra", ID: "single-vertex",
			Args:     []any{[][]exercise.Edge{{}}, 0},
			Expected: []int{0},
		},
		{
			Exercise: "dijkstra", ID: "cheaper-detour",
			Args: []any{[][]exercise.Edge{
				{{To: 1, Weight: 1}, {To: 2, Weight: 10}},
				{{To: 2, Weight: 2}},
				{},
			}, 0},
			Expected: []int{0, 1, 3},
		},
		{
			Exercise: "dijkstra", ID: "unreachable-sentinel",
			Args: []any{[][]exercise.Edge{
				{{To: 1, Weight: 4}},
				{},
				{},
			}, 0},
			Expected: []int{0, 4, exercise.Unreachable},
		},
		{
			Exercise: "dijkstra", ID: "negative-weight-rejected",
			Args:        []any{[][]exercise.Edge{{{To: 1, Weight: -1}}, {}}, 0},
			ExpectError: "negative edge weight",
		},

		// integrate
		{Exercise: "integrate", ID: "unit-interval", Args: []any{0.0, 1.0, 1000}, Expected: 1.0 / 3.0, Epsilon: 1e-6},
		{Exercise: "integrate", ID: "coarse-grid", Args: []any{0.0, 2.0, 4}, Expected: 2.75, Epsilon: 1e-12},
		{Exercise: "integrate", ID: "zero-steps-rejected", Args: []any{0.0, 1.0, 0}, ExpectError: "below exercise domain"},

		// modpow
		{Exercise: "modpow", ID: "truncating-modulus", Args: []any{2, 10, 1000}, Expected: 24},
		{Exercise: "modpow", ID: "zero-exponent", Args: []any{3, 0, 7}, Expected: 1},
		{Exercise: "modpow", ID: "reduced-base", Args: []any{10, 9, 6}, Expected: 4},

		// sqrtNewton
		{Exercise: "sqrtNewton", ID: "perfect-square", Args: []any{4.0, 20}, Expected: 2.0, Epsilon: 1e-9},
		{Exercise: "sqrtNewton", ID: "zero", Args: []any{0.0, 5}, Expected: 0.0},
		{Exercise: "sqrtNewton", ID: "sqrt-two", Args: []any{2.0, 30}, Expected: 1.4142135623730951, Epsilon: 1e-9},
	}
	return append([]Case(nil), cases...)
}
