// SPDX-License-Identifier: MIT

// Package heatmap renders a correlation matrix as a fixed-width, color-banded
// terminal grid.
//
// Layout (K = 3, cells are 8 characters wide, right-aligned):
//
//	C-MATRIX    temphumidity    wind
//	    temp    1.00   -0.42    0.13
//	humidity   -0.42    1.00    0.77
//	    wind    0.13    0.77    1.00
//
// Names longer than eight characters are cut, not wrapped or ellipsized.
//
// Colors:
//   - [-1, 1] is split into ten bands of width 0.2, half-open [lo, hi) except
//     the last, which is closed at 1.0. The palette diverges symmetrically
//     about zero: red, yellow, green, blue, gray | gray, blue, green, yellow, red;
//     positive bands also carry a matching dark background.
//   - The diagonal ignores its value and uses DiagonalBand (foreground equal to
//     background), so self-correlation never reads as a strong positive.
//   - NaN cells (zero-variance columns) use DegenerateBand and print "NaN".
//
// Output goes through a Sink, never a process-wide console. Terminal is the
// fatih/color implementation; tests substitute a recording Sink.
package heatmap
