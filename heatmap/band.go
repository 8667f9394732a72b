// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/corrheat"
)

// Band maps the interval [Lo, Hi) to a foreground/background pair.
// The last band of the scale is closed: [0.8, 1].
type Band struct {
	Lo, Hi float64
	Fg, Bg Color
}

// Label renders the bounds as "lo : hi" with one decimal.
func (b Band) Label() string {
	return fmt.Sprintf("%.1f : %.1f", b.Lo, b.Hi)
}

// bands is the diverging scale, ascending. Bounds are literals, not
// -1+0.2*i, so that a cell value of exactly 0.2 compares equal to its bound.
var bands = [...]Band{
	{Lo: -1.0, Hi: -0.8, Fg: Red, Bg: Default},
	{Lo: -0.8, Hi: -0.6, Fg: Yellow, Bg: Default},
	{Lo: -0.6, Hi: -0.4, Fg: Green, Bg: Default},
	{Lo: -0.4, Hi: -0.2, Fg: Blue, Bg: Default},
	{Lo: -0.2, Hi: 0.0, Fg: Gray, Bg: Default},
	{Lo: 0.0, Hi: 0.2, Fg: Gray, Bg: Black},
	{Lo: 0.2, Hi: 0.4, Fg: Blue, Bg: DarkBlue},
	{Lo: 0.4, Hi: 0.6, Fg: Green, Bg: DarkGreen},
	{Lo: 0.6, Hi: 0.8, Fg: Yellow, Bg: DarkYellow},
	{Lo: 0.8, Hi: 1.0, Fg: Red, Bg: DarkRed},
}

var (
	// DiagonalBand overrides every i == j cell: foreground equals background,
	// so the forced 1.0 renders as a blank block.
	DiagonalBand = Band{Lo: 1, Hi: 1, Fg: DarkGray, Bg: DarkGray}

	// DegenerateBand draws NaN cells produced by zero-variance columns.
	DegenerateBand = Band{Lo: math.NaN(), Hi: math.NaN(), Fg: DarkGray, Bg: Default}
)

// Bands returns a copy of the ten-band scale in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])

	return out
}

// Classify returns the band for v. NaN maps to DegenerateBand. Values
// outside [-1, 1] fail with corrheat.ErrIntegrity.
func Classify(v float64) (Band, error) {
	if math.IsNaN(v) {
		return DegenerateBand, nil
	}
	last := len(bands) - 1
	for i, b := range bands {
		if v >= b.Lo && (v < b.Hi || (i == last && v <= b.Hi)) {
			return b, nil
		}
	}

	return Band{}, fmt.Errorf("heatmap: value %v outside [-1, 1]: %w", v, corrheat.ErrIntegrity)
}
