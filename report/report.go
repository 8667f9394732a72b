// SPDX-License-Identifier: MIT

// Package report encodes a correlation result as YAML for machine consumers.
//
// Example output:
//
//	algorithm: pearson
//	rows: 5
//	columns: [A, B, D]
//	matrix: [[1, -1, .nan], [-1, 1, .nan], [.nan, .nan, 1]]
//	degenerate: [D]
//
// NaN cells (zero-variance columns) are written as the YAML .nan literal.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/correlation"
)

// Document is the YAML shape of one correlation run.
type Document struct {
	Algorithm  string      `yaml:"algorithm"`
	Rows       int         `yaml:"rows"`
	Columns    []string    `yaml:"columns,flow"`
	Matrix     [][]float64 `yaml:"matrix,flow"`
	Degenerate []string    `yaml:"degenerate,omitempty,flow"`
}

// New assembles a Document from a result, its header and the observation count.
// A header whose length differs from the matrix dimension fails with corrheat.ErrSchema.
func New(res *correlation.Result, header []string, rows int) (*Document, error) {
	if res == nil || res.Matrix == nil {
		return nil, fmt.Errorf("report.New: nil result: %w", corrheat.ErrIntegrity)
	}
	if len(header) != res.Matrix.Rows() {
		return nil, fmt.Errorf("report.New: header has %d names, matrix has %d rows: %w",
			len(header), res.Matrix.Rows(), corrheat.ErrSchema)
	}

	doc := &Document{
		Algorithm: res.Algorithm.String(),
		Rows:      rows,
		Columns:   append([]string(nil), header...),
		Matrix:    res.Matrix.ToRows(),
	}
	for _, j := range res.Degenerate {
		doc.Degenerate = append(doc.Degenerate, header[j])
	}

	return doc, nil
}

// Write encodes doc to w with two-space indentation.
func Write(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}

	return enc.Close()
}
