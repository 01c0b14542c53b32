// Package sequence computes terms of a Fibonacci-style sequence whose first
// terms are -1, 0, 1, 3, 5, 8, 13...
package sequence

import (
	"math"

	"axlab.dev/lessons/pkg/core"
)

// Invalid is returned for any index that is not a non-negative integer.
const Invalid = -1

// Term returns the n-th term of the sequence. Indexes up to 2 map to n - 1,
// larger ones run the accumulators n times, so Term(n) is Fibonacci(n+1)
// from n = 3 on. Negative, fractional, infinite or NaN indexes return Invalid.
func Term(n float64) float64 {
	if n < 0 || math.IsNaN(n) || math.Mod(n, 1) != 0 {
		return Invalid
	}
	if n <= 2 {
		return n - 1
	}

	prev, curr := 0.0, 1.0
	for i := 0.0; i < n; i++ {
		prev, curr = curr, curr+prev
		// past float64 range the sum stays at +Inf, and past 2^53 the
		// counter would stop advancing
		if math.IsInf(curr, +1) {
			break
		}
	}
	return curr
}

// TermOf is Term for loosely typed input. Anything that is not a number
// returns Invalid.
func TermOf(n any) float64 {
	num, ok := core.ValueOf(n).Number()
	if !ok {
		return Invalid
	}
	return Term(num)
}
