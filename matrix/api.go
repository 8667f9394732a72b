// SPDX-License-Identifier: MIT

package matrix

// ---------- Statistics (public surface → internal implementations) ----------

// CenterColumns returns a centered copy: Xc = X − mean(X, by columns) and the column means.
// Returns Xc and the column means (length = Cols(X)).
// Determinism: fixed loops. Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Correlation computes the Pearson correlation of the columns of X:
//
//	corr(i,j) = Σ xc_i·xc_j / sqrt(Σ xc_i² · Σ xc_j²),   xc = X − mean(X)
//
// The diagonal is exactly 1. Columns whose values are all identical are
// reported in the second return value and their off-diagonal cells are NaN.
// Requires at least two rows (else ErrDimensionMismatch).
// Time: O(r*c^2). Space: O(r*c + c^2).
func Correlation(X Matrix) (*Dense, []int, error) { return correlation(X) }
