package exercise

// IsValidParentheses reports whether s consists of correctly matched and
// nested brackets drawn from ()[]{}.  A stack records open brackets; any
// closer that does not match the top of the stack, or any leftover opener,
// makes the string invalid. The empty string is valid.
func IsValidParentheses(s string) bool {
	stack := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', '{', '[':
			stack = append(stack, c)
		default:
			if len(stack) == 0 {
				return false
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (c == ')' && top != '(') ||
				(c == '}' && top != '{') ||
				(c == ']' && top != '[') {
				return false
			}
		}
	}

	return len(stack) == 0
}

// WordBreak reports whether s can be segmented into a sequence of words
// from dict. It runs the prefix-feasibility dynamic program: dp[i] is true
// when s[:i] is segmentable, with the dp[0]=true sentinel for the empty
// prefix.
func WordBreak(s string, dict []string) bool {
	wordSet := make(map[string]struct{}, len(dict))
	for _, w := range dict {
		wordSet[w] = struct{}{}
	}

	dp := make([]bool, len(s)+1)
	dp[0] = true

	for i := 1; i <= len(s); i++ {
		for j := 0; j < i; j++ {
			if !dp[j] {
				continue
			}
			if _, ok := wordSet[s[j:i]]; ok {
				dp[i] = true
				break
			}
		}
	}

	return dp[len(s)]
}

// MinDistance returns the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions, and
// substitutions transforming one into the other.
//
// The classic tabulation is used, with the base row and column equal to the
// prefix index (editing against the empty string).
func MinDistance(a, b string) int {
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			best := dp[i-1][j] + 1 // deletion
			if ins := dp[i][j-1] + 1; ins < best {
				best = ins // insertion
			}
			if sub := dp[i-1][j-1] + 1; sub < best {
				best = sub // substitution
			}
			dp[i][j] = best
		}
	}

	return dp[m][n]
}
