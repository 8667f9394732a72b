// SPDX-License-Identifier: MIT

package columns

import (
	"fmt"

	"github.com/katalvlaran/corrheat"
)

// Accessor names one numeric column of a record type T and reads it.
// Value may fail (e.g. a text field that does not parse as a number).
type Accessor[T any] struct {
	Name  string
	Value func(T) (float64, error)
}

// Field builds an Accessor from an infallible getter.
func Field[T any](name string, get func(T) float64) Accessor[T] {
	return Accessor[T]{
		Name:  name,
		Value: func(rec T) (float64, error) { return get(rec), nil },
	}
}

// FromRecords extracts one column per accessor, in accessor order, and
// builds a Set from them. Accessor errors are reported as corrheat.ErrSchema
// with the record index and column name.
func FromRecords[T any](records []T, accessors ...Accessor[T]) (*Set, error) {
	cols := make([]Column, len(accessors))
	for j, acc := range accessors {
		if acc.Value == nil {
			return nil, fmt.Errorf("columns.FromRecords: accessor %d (%q) has no Value func: %w",
				j, acc.Name, corrheat.ErrSchema)
		}
		vals := make([]float64, len(records))
		for i, rec := range records {
			v, err := acc.Value(rec)
			if err != nil {
				return nil, fmt.Errorf("columns.FromRecords: record %d, column %q: %w: %w",
					i, acc.Name, corrheat.ErrSchema, err)
			}
			vals[i] = v
		}
		cols[j] = Column{Name: acc.Name, Values: vals}
	}

	return New(cols...)
}
