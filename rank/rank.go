// SPDX-License-Identifier: MIT

// Package rank converts numeric sequences into their order statistics.
//
// Ties receive the average of the rank positions they jointly occupy, which
// keeps rank correlation well-defined for duplicate-heavy columns:
//
//	Average([]float64{5, 1, 1, 3}) == []float64{4, 1.5, 1.5, 3}
package rank

import (
	"cmp"
	"slices"
)

// Average returns the 1-based rank of each value with average-rank tie
// handling. The input is never mutated; the result is a new slice of equal
// length. NaN inputs are not supported (they compare unequal to themselves).
//
// Algorithm:
//  1. Stable-sort the indices 0..n-1 by value.
//  2. Walk the sorted order; for each maximal run [lo, hi) of equal values,
//     every member gets the mean of ranks lo+1..hi, i.e. (lo+1+hi)/2.
//
// Complexity: O(n log n) time, O(n) space.
func Average(values []float64) []float64 {
	n := len(values)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	var lo, hi, k int
	var mean float64
	for lo = 0; lo < n; lo = hi {
		hi = lo + 1
		for hi < n && values[idx[hi]] == values[idx[lo]] {
			hi++
		}
		// Ranks lo+1..hi are consecutive integers; their mean is the midpoint.
		mean = float64(lo+1+hi) / 2
		for k = lo; k < hi; k++ {
			ranks[idx[k]] = mean
		}
	}

	return ranks
}
