package exercise

import "math"

// MergeSortedArrays merges two sorted integer slices into a single sorted
// slice using the standard two-pointer merge. The merge is stable: on equal
// elements the value from a is taken first. Runs in O(len(a)+len(b)).
func MergeSortedArrays(a, b []int) []int {
	result := make([]int, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			result = append(result, a[i])
			i++
		} else {
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)

	return result
}

// RemoveDuplicates compacts a sorted slice in place so that each value
// appears once, using a read/write two-pointer sweep, and returns the new
// logical length. Elements past the returned length are unspecified.
func RemoveDuplicates(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	write := 1
	for read := 1; read < len(nums); read++ {
		if nums[read] != nums[read-1] {
			nums[write] = nums[read]
			write++
		}
	}
	return write
}

// LongestIncreasingSubsequence returns the length of the longest strictly
// increasing subsequence of nums using the O(n²) dynamic program
// dp[i] = 1 + max(dp[j]) over j < i with nums[j] < nums[i].
// An empty input yields 0.
func LongestIncreasingSubsequence(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	dp := make([]int, len(nums))
	for i := range dp {
		dp[i] = 1
	}
	maxLength := 1
	for i := 1; i < len(nums); i++ {
		for j := 0; j < i; j++ {
			if nums[i] > nums[j] && dp[j]+1 > dp[i] {
				dp[i] = dp[j] + 1
			}
		}
		if dp[i] > maxLength {
			maxLength = dp[i]
		}
	}
	return maxLength
}

// FindMedianSortedArrays returns the median of the union of two sorted
// slices in O(log(min(m,n))) time by binary-searching a partition index.
//
// The search always runs over the shorter slice; operands are swapped first
// if needed. Partition boundaries outside either slice are represented with
// ±Inf sentinels so the comparison logic needs no special cases. For an
// even total length the median is the mean of the two middle values.
//
// The union of the two slices must be non-empty: the median of zero values
// is undefined, and two empty inputs return NaN (the mean of the two
// sentinels).
func FindMedianSortedArrays(a, b []int) float64 {
	if len(a) > len(b) {
		return FindMedianSortedArrays(b, a)
	}

	m, n := len(a), len(b)
	total := m + n
	half := (total + 1) / 2

	left, right := 0, m
	for left <= right {
		i := left + (right-left)/2
		j := half - i

		aLeft := math.Inf(-1)
		if i > 0 {
			aLeft = float64(a[i-1])
		}
		aRight := math.Inf(1)
		if i < m {
			aRight = float64(a[i])
		}
		bLeft := math.Inf(-1)
		if j > 0 {
			bLeft = float64(b[j-1])
		}
		bRight := math.Inf(1)
		if j < n {
			bRight = float64(b[j])
		}

		switch {
		case aLeft <= bRight && bLeft <= aRight:
			if total%2 == 1 {
				return math.Max(aLeft, bLeft)
			}
			return (math.Max(aLeft, bLeft) + math.Min(aRight, bRight)) / 2.0
		case aLeft > bRight:
			right = i - 1
		default:
			left = i + 1
		}
	}

	return 0.0
}
