// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/matrix"
)

const (
	legendTitle = "Legend:"
	swatchGlyph = "█"
	nanText     = "NaN"
)

// Render writes m as a heatmap grid to sink: one header line and one line
// per row, then the legend when WithLegend(true) is set.
//
// Every precondition is checked before the first write:
//   - sink non-nil (corrheat.ErrConfig);
//   - m non-nil and square, len(header) == dimension (corrheat.ErrSchema);
//   - each cell NaN or within [-1, 1] (corrheat.ErrIntegrity).
//
// The sink is reset before the first write, after every cell and once more on
// return, on success and on a failed write alike. Sink has no way to report
// its current colors, so a caller's prior color state is not restored: the
// sink is always left at Default foreground and background.
func Render(sink Sink, m matrix.Matrix, header []string, opts ...Option) error {
	if sink == nil {
		return fmt.Errorf("heatmap.Render: nil sink: %w", corrheat.ErrConfig)
	}
	o := gatherOptions(opts...)

	grid, err := classifyGrid(m, header)
	if err != nil {
		return err
	}

	defer sink.Reset()
	sink.Reset()

	if err = renderGrid(sink, m, header, grid, o.title); err != nil {
		return fmt.Errorf("heatmap.Render: %w", err)
	}
	if o.showLegend {
		if err = renderLegend(sink, o.swatchWidth); err != nil {
			return fmt.Errorf("heatmap.Render: legend: %w", err)
		}
	}

	return nil
}

// classifyGrid validates the shape and resolves each cell's band up front.
func classifyGrid(m matrix.Matrix, header []string) ([][]Band, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("heatmap.Render: %w: %w", corrheat.ErrSchema, err)
	}
	k := m.Rows()
	if len(header) != k {
		return nil, fmt.Errorf("heatmap.Render: header has %d names, matrix is %dx%d: %w",
			len(header), k, k, corrheat.ErrSchema)
	}

	grid := make([][]Band, k)
	var v float64
	var err error
	for i := 0; i < k; i++ {
		grid[i] = make([]Band, k)
		for j := 0; j < k; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("heatmap.Render: %w", err)
			}
			if i == j {
				grid[i][j] = DiagonalBand
				continue
			}
			if grid[i][j], err = Classify(v); err != nil {
				return nil, fmt.Errorf("heatmap.Render: cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return grid, nil
}

func renderGrid(sink Sink, m matrix.Matrix, header []string, grid [][]Band, title string) error {
	var b strings.Builder
	b.WriteString(fit(title))
	for _, name := range header {
		b.WriteString(fit(name))
	}
	b.WriteString("\n")
	if err := sink.Write(b.String()); err != nil {
		return err
	}

	for i := range grid {
		if err := sink.Write(fit(header[i])); err != nil {
			return err
		}
		for j, band := range grid[i] {
			v, _ := m.At(i, j) // bounds already checked by classifyGrid
			if err := writeCell(sink, band, formatCell(v)); err != nil {
				return err
			}
		}
		if err := sink.Write("\n"); err != nil {
			return err
		}
	}

	return nil
}

func renderLegend(sink Sink, swatchWidth int) error {
	if err := sink.Write("\n" + legendTitle + "\n"); err != nil {
		return err
	}
	swatch := strings.Repeat(swatchGlyph, swatchWidth)
	for _, band := range bands {
		if err := writeCell(sink, band, swatch); err != nil {
			return err
		}
		if err := sink.Write(" " + band.Label() + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeCell prints text in band colors and resets the sink right after.
func writeCell(sink Sink, band Band, text string) error {
	sink.SetForeground(band.Fg)
	sink.SetBackground(band.Bg)
	err := sink.Write(text)
	sink.Reset()

	return err
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return fit(nanText)
	}

	return fmt.Sprintf("%*.2f", CellWidth, v)
}

// fit truncates s to CellWidth runes and right-aligns it in a CellWidth field.
// Truncation is plain: no ellipsis, no wrapping.
func fit(s string) string {
	if r := []rune(s); len(r) > CellWidth {
		s = string(r[:CellWidth])
	}

	return fmt.Sprintf("%*s", CellWidth, s)
}
