// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/columns"
	"github.com/katalvlaran/corrheat/matrix"
	"github.com/katalvlaran/corrheat/rank"
)

// Correlate computes the K×K correlation matrix of set under alg.
//
// Pearson runs the matrix.Correlation kernel on the raw columns. Spearman
// replaces every column by its average ranks (rank.Average) and runs the same
// kernel, so ties are handled exactly rather than by the closed-form d²
// shortcut.
//
// Degenerate policy: a zero-variance column leaves NaN in every off-diagonal
// cell of its row and column and is listed in Result.Degenerate. With
// WithStrictDegenerate the call fails with corrheat.ErrDegenerateInput instead.
//
// Errors:
//   - corrheat.ErrConfig for an unknown alg, before any computation.
//   - corrheat.ErrIntegrity for a nil set.
//   - corrheat.ErrDegenerateInput under the strict policy.
func Correlate(set *columns.Set, alg Algorithm, opts ...Option) (*Result, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("correlation.Correlate: %v: %w", alg, corrheat.ErrConfig)
	}
	if set == nil {
		return nil, fmt.Errorf("correlation.Correlate: nil column set: %w", corrheat.ErrIntegrity)
	}
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	data := set.Data()
	if alg == Spearman {
		for j := range data {
			data[j] = rank.Average(data[j])
		}
	}

	X, err := matrix.FromColumns(data)
	if err != nil {
		return nil, fmt.Errorf("correlation.Correlate: %w: %w", corrheat.ErrIntegrity, err)
	}
	C, degenerate, err := matrix.Correlation(X)
	if err != nil {
		return nil, fmt.Errorf("correlation.Correlate: %w: %w", corrheat.ErrIntegrity, err)
	}

	if o.strictDegenerate && len(degenerate) > 0 {
		names := set.Names()
		bad := make([]string, len(degenerate))
		for i, j := range degenerate {
			bad[i] = names[j]
		}
		return nil, fmt.Errorf("correlation.Correlate: zero-variance columns %q: %w",
			bad, corrheat.ErrDegenerateInput)
	}

	return &Result{Algorithm: alg, Matrix: C, Degenerate: degenerate}, nil
}
