// SPDX-License-Identifier: MIT

package corrheat

import "errors"

// Error kinds shared by every stage of an extract → correlate → render run.
// Packages wrap these with context via fmt.Errorf("...: %w", ErrX); callers
// match with errors.Is. None of them is retryable: every operation is pure,
// so the remedy is always to fix the input.
var (
	// ErrSchema reports a shape problem in the source data or at render time:
	// too few numeric fields, an unparsable field, or a header whose length
	// differs from the matrix dimension.
	ErrSchema = errors.New("corrheat: schema violation")

	// ErrIntegrity reports a structural inconsistency inside a column set,
	// such as columns of unequal length, or a matrix cell outside [-1, 1].
	ErrIntegrity = errors.New("corrheat: integrity violation")

	// ErrDegenerateInput reports a zero-variance column when the strict
	// degenerate policy is selected.
	ErrDegenerateInput = errors.New("corrheat: degenerate input (zero variance)")

	// ErrConfig reports an invalid configuration value (unknown algorithm,
	// unknown output format) rejected at the call boundary.
	ErrConfig = errors.New("corrheat: invalid configuration")
)
