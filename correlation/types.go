// SPDX-License-Identifier: MIT

// Package correlation defines the algorithm enumeration and options for the
// correlation engine.
package correlation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/matrix"
)

// Algorithm selects how pairwise correlation is measured.
//
//   - Spearman: Pearson over average ranks; captures monotonic association.
//     The zero value, and therefore the default.
//   - Pearson: linear correlation over raw values.
type Algorithm int

const (
	// Spearman computes rank-then-Pearson correlation.
	Spearman Algorithm = iota

	// Pearson computes linear correlation over raw values.
	Pearson
)

// DefaultAlgorithm is used when the caller expresses no preference.
const DefaultAlgorithm = Spearman

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Spearman:
		return "spearman"
	case Pearson:
		return "pearson"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a == Spearman || a == Pearson
}

// ParseAlgorithm maps a case-insensitive name onto an Algorithm.
// An empty name yields DefaultAlgorithm. Unknown names fail with corrheat.ErrConfig.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultAlgorithm, nil
	case "spearman":
		return Spearman, nil
	case "pearson":
		return Pearson, nil
	default:
		return 0, fmt.Errorf("correlation: unknown algorithm %q: %w", name, corrheat.ErrConfig)
	}
}

// Result is a correlation matrix plus the facts needed to interpret it.
// It holds no reference to the column set it was computed from.
type Result struct {
	// Algorithm that produced Matrix.
	Algorithm Algorithm

	// Matrix is K×K, symmetric bit-for-bit, with a unit diagonal.
	// Off-diagonal cells touching a zero-variance column are NaN.
	Matrix *matrix.Dense

	// Degenerate lists the indices of zero-variance columns, ascending.
	Degenerate []int
}

// Option configures Correlate.
type Option func(*options)

type options struct {
	strictDegenerate bool
}

// WithStrictDegenerate makes Correlate fail with corrheat.ErrDegenerateInput
// when any column has zero variance, instead of returning NaN cells.
func WithStrictDegenerate() Option {
	return func(o *options) { o.strictDegenerate = true }
}
