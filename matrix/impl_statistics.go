// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics behind correlation: centering and the
//     Pearson kernel, as deterministic loops over row-major Dense buffers.
//
// Exposed API (see api.go):
//   - CenterColumns(X) -> (Xc, means)        // subtract per-column mean
//   - Correlation(X)   -> (Corr, degenerate) // Pearson; zero-variance → NaN off-diagonal
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on row-major flat buffers; other Matrix
//     implementations go through At with full error propagation.
//   - Symmetric outputs are written from the upper triangle into both halves.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCorrelation   = "Correlation"
)

// matrixErrorf tags err with the operation name, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns X as *Dense, copying through At for foreign implementations.
func denseOf(op string, X Matrix) (*Dense, error) {
	if d, ok := X.(*Dense); ok {
		return d, nil
	}
	r, c := X.Rows(), X.Cols()
	d, err := NewDense(r, c, WithAllowNaN())
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Accumulate column sums in a deterministic pass, divide by r.
//   - Stage 3: Write X[i,j] - mean[j] into a fresh Dense.
//
// Returns:
//   - *Dense: centered copy (r×c), same numeric policy as the input.
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := denseOf(opCenterColumns, X)
	if err != nil {
		return nil, nil, err
	}

	r, c := d.r, d.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	out := &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: d.validateNaNInf}
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = d.data[base+j] - means[j]
		}
	}

	return out, means, nil
}

// correlation computes the Pearson correlation of the columns of X.
// Implementation:
//   - Stage 1: Validate X, require r>=2 observations.
//   - Stage 2: Flag degenerate columns (all values identical: zero variance).
//   - Stage 3: Scale each column by a power of two (scaleColumns), center,
//     accumulate Σ xc² per column.
//   - Stage 4: For i<j: num = Σ xc_i·xc_j, corr = num / sqrt(Σxc_i² · Σxc_j²),
//     clamped into [-1, 1]; written to (i,j) and (j,i) from the same value.
//     A non-finite ratio marks both columns degenerate.
//   - Stage 5: NaN every off-diagonal cell of a degenerate column.
//
// Behavior highlights:
//   - Diagonal is exactly 1.0 for every column, degenerate or not.
//   - Off-diagonal cells touching a degenerate column are NaN.
//   - The 1/(r-1) sample factors of covariance and variance cancel, so the
//     numerator and denominator always share one normalization convention.
//   - Pearson of a column with itself, or with its exact negation, is exactly ±1.
//
// Returns:
//   - *Dense: c×c correlation matrix (NaN-tolerant policy).
//   - []int: ascending indices of degenerate columns (nil when none).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch (r<2); ErrNaNInf (non-finite input).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func correlation(X Matrix) (*Dense, []int, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	d, err := denseOf(opCorrelation, X)
	if err != nil {
		return nil, nil, err
	}
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, matrixErrorf(opCorrelation, ErrNaNInf)
		}
	}

	// Stage 2: zero variance is decided on raw values, not on the centered
	// sum of squares, which can be a tiny non-zero residue of rounding.
	var i, j, k int
	degenerate := make([]bool, c)
	for j = 0; j < c; j++ {
		first := d.data[j]
		same := true
		for i = 1; i < r; i++ {
			if d.data[i*c+j] != first {
				same = false
				break
			}
		}
		degenerate[j] = same
	}

	// Stage 3: scale, center and accumulate squared sums.
	Xc, _, err := centerColumns(scaleColumns(d))
	if err != nil {
		return nil, nil, matrixErrorf(opCorrelation, err)
	}
	sumsq := make([]float64, c)
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = Xc.data[i*c+j]
			sumsq[j] += v * v
		}
	}

	// Stage 4: upper triangle + mirror.
	corr, err := NewDense(c, c, WithAllowNaN())
	if err != nil {
		return nil, nil, matrixErrorf(opCorrelation, err)
	}
	var num, rho float64
	for i = 0; i < c; i++ {
		corr.data[i*c+i] = 1.0
		for j = i + 1; j < c; j++ {
			if degenerate[i] || degenerate[j] {
				continue
			}
			num = 0.0
			for k = 0; k < r; k++ {
				num += Xc.data[k*c+i] * Xc.data[k*c+j]
			}
			rho = num / math.Sqrt(sumsq[i]*sumsq[j])
			if math.IsNaN(rho) || math.IsInf(rho, 0) {
				// Non-finite ratios fall under the zero-variance policy.
				degenerate[i], degenerate[j] = true, true
				continue
			}
			rho = clampUnit(rho)
			corr.data[i*c+j] = rho
			corr.data[j*c+i] = rho
		}
	}

	// Stage 5: every cell touching a degenerate column is NaN.
	var degIdx []int
	for j = 0; j < c; j++ {
		if !degenerate[j] {
			continue
		}
		degIdx = append(degIdx, j)
		for i = 0; i < c; i++ {
			if i != j {
				corr.data[i*c+j] = math.NaN()
				corr.data[j*c+i] = math.NaN()
			}
		}
	}

	return corr, degIdx, nil
}

// scaleColumns returns a copy of d with every column multiplied by the power
// of two that brings its largest magnitude into [0.5, 1). The scaling is exact,
// so correlations are bit-identical to the unscaled computation wherever that
// one neither overflows nor underflows.
func scaleColumns(d *Dense) *Dense {
	r, c := d.r, d.c
	out := &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: d.validateNaNInf}
	var i, j, exp int
	var maxAbs float64
	for j = 0; j < c; j++ {
		maxAbs = 0
		for i = 0; i < r; i++ {
			maxAbs = math.Max(maxAbs, math.Abs(d.data[i*c+j]))
		}
		exp = 0
		if maxAbs > 0 {
			_, exp = math.Frexp(maxAbs)
		}
		for i = 0; i < r; i++ {
			out.data[i*c+j] = math.Ldexp(d.data[i*c+j], -exp)
		}
	}

	return out
}

// clampUnit folds rounding overshoot back into [-1, 1].
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}
