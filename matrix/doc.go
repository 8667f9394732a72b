// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind correlation results.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe At/Set (errors, never panics)
//     and an explicit numeric policy (NaN/Inf rejected unless WithAllowNaN).
//   - FromColumns: build an N×K observation matrix from K parallel columns.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateUnitDiagonal.
//   - Statistics: CenterColumns and the Pearson Correlation kernel
//     with an explicit zero-variance policy (NaN off-diagonal, 1 on diagonal).
//
// Determinism: every kernel uses fixed i→j loop orders and fills symmetric
// results from the upper triangle, so M[i][j] and M[j][i] are the same bits.
package matrix
