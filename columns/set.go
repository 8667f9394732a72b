// SPDX-License-Identifier: MIT

package columns

import (
	"fmt"
	"math"

	"github.com/katalvlaran/corrheat"
)

const (
	// MinColumns is the smallest K a Set accepts (one pair to correlate).
	MinColumns = 2

	// MinRows is the smallest N a Set accepts; sample statistics need two observations.
	MinRows = 2
)

// Column is one named sequence of observations.
// Name is the identity of the column; display truncation happens in the renderer.
type Column struct {
	Name   string
	Values []float64
}

// Set is an immutable collection of equally long named columns.
type Set struct {
	cols []Column
	rows int
}

// New validates cols and returns a Set owning private copies of them.
//
// Errors (wrapped, match with errors.Is):
//   - corrheat.ErrSchema: fewer than MinColumns columns, or a NaN/±Inf value.
//   - corrheat.ErrIntegrity: columns of unequal length, or fewer than MinRows rows.
func New(cols ...Column) (*Set, error) {
	if len(cols) < MinColumns {
		return nil, fmt.Errorf("columns.New: got %d columns, want at least %d: %w",
			len(cols), MinColumns, corrheat.ErrSchema)
	}

	n := len(cols[0].Values)
	for j, c := range cols {
		if len(c.Values) != n {
			return nil, fmt.Errorf("columns.New: column %d (%q) has %d rows, want %d: %w",
				j, c.Name, len(c.Values), n, corrheat.ErrIntegrity)
		}
	}
	if n < MinRows {
		return nil, fmt.Errorf("columns.New: got %d rows, want at least %d: %w",
			n, MinRows, corrheat.ErrIntegrity)
	}

	owned := make([]Column, len(cols))
	for j, c := range cols {
		vals := make([]float64, n)
		for i, v := range c.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("columns.New: column %q row %d is %v: %w",
					c.Name, i, v, corrheat.ErrSchema)
			}
			vals[i] = v
		}
		owned[j] = Column{Name: c.Name, Values: vals}
	}

	return &Set{cols: owned, rows: n}, nil
}

// Len returns the number of columns K.
func (s *Set) Len() int { return len(s.cols) }

// Rows returns the number of observations N shared by every column.
func (s *Set) Rows() int { return s.rows }

// Names returns the header: column names in positional order.
func (s *Set) Names() []string {
	out := make([]string, len(s.cols))
	for j, c := range s.cols {
		out[j] = c.Name
	}

	return out
}

// Values returns a copy of column j's values.
// Panics if j is out of range, like a slice index.
func (s *Set) Values(j int) []float64 {
	out := make([]float64, s.rows)
	copy(out, s.cols[j].Values)

	return out
}

// Data returns the raw columns as [][]float64 copies, in positional order.
func (s *Set) Data() [][]float64 {
	out := make([][]float64, len(s.cols))
	for j := range s.cols {
		out[j] = s.Values(j)
	}

	return out
}
