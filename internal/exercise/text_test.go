package exercise

import "testing"

func TestIsValidParentheses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"()", true},
		{"()[]{}", true},
		{"([{}])", true},
		{"(]", false},
		{"(()", false},
		{")(", false},
		{"([)]", false},
		{"{{}}[]", true},
	}
	for _, tt := range tests {
		if got := IsValidParentheses(tt.s); got != tt.want {
			t.Errorf("IsValidParentheses(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestWordBreak(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		s    string
		dict []string
		want bool
	}{
		{"simple split", "leetcode", []string{"leet", "code"}, true},
		{"word reuse", "applepenapple", []string{"apple", "pen"}, true},
		{"no segmentation", "catsandog", []string{"cats", "dog", "sand", "and", "cat"}, false},
		{"empty string", "", []string{"a"}, true},
		{"empty dictionary", "a", nil, false},
		{"whole word", "go", []string{"go"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WordBreak(tt.s, tt.dict); got != tt.want {
				t.Errorf("WordBreak(%q, %v) = %v, want %v", tt.s, tt.dict, got, tt.want)
			}
		})
	}
}

func TestMinDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want int
	}{
		{"horse", "ros", 3},
		{"intention", "execution", 5},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := MinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("MinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestMinDistance_EmptyAgainstAny pins the base-case property: editing from
// the empty string always costs exactly the length of the other string.
func TestMinDistance_EmptyAgainstAny(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "x", "hello", "abcdefghij"} {
		if got := MinDistance("", s); got != len(s) {
			t.Errorf("MinDistance(\"\", %q) = %d, want %d", s, got, len(s))
		}
		if got := MinDistance(s, ""); got != len(s) {
			t.Errorf("MinDistance(%q, \"\") = %d, want %d", s, got, len(s))
		}
	}
}
