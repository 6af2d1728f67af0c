package exercise

// SumDigits returns the sum of the decimal digits of n. The sign of n is
// ignored by taking the absolute value first.
func SumDigits(n int) int {
	if n < 0 {
		n = -n
	}
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}

// ReverseInt returns n with its decimal digits reversed. The sign is
// stripped before reversal and reattached afterwards, so
// ReverseInt(-120) = -21.
//
// Trailing zeros collapse: ReverseInt(120) = 21, and reversing again yields
// 12, not 120. Round-tripping only holds for inputs without trailing zeros.
func ReverseInt(n int) int {
	sign := 1
	if n < 0 {
		sign = -1
		n = -n
	}
	rev := 0
	for n > 0 {
		rev = rev*10 + n%10
		n /= 10
	}
	return sign * rev
}

// IsPalindromeNumber reports whether the decimal digits of n read the same
// forwards and backwards, ignoring the sign: both 121 and -121 are
// palindromes.
func IsPalindromeNumber(n int) bool {
	if n < 0 {
		n = -n
	}
	original := n
	rev := 0
	for n > 0 {
		rev = rev*10 + n%10
		n /= 10
	}
	return rev == original
}

// CountSetBits returns the number of 1-bits in the binary representation of
// n, counted by repeated shift and mask. The sign is ignored by taking the
// absolute value first.
func CountSetBits(n int) int {
	if n < 0 {
		n = -n
	}
	cnt := 0
	for n != 0 {
		cnt += n & 1
		n >>= 1
	}
	return cnt
}
