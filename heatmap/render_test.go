// SPDX-License-Identifier: MIT

package heatmap_test

import (
	"bytes"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/heatmap"
)

func TestRender_GridLayout(t *testing.T) {
	t.Parallel()

	m := filled(t, 2,
		1, -0.5,
		-0.5, 1,
	)
	rec := &recorder{}
	require.NoError(t, heatmap.Render(rec, m, []string{"A", "LongHeaderName"}))

	want := "C-MATRIX       ALongHead\n" +
		"       A    1.00   -0.50\n" +
		"LongHead   -0.50    1.00\n"
	assert.Equal(t, want, rec.text())
	assert.Equal(t, heatmap.Default, rec.fg)
	assert.Equal(t, heatmap.Default, rec.bg)
}

func TestRender_LineCountAndColorRestore(t *testing.T) {
	t.Parallel()

	for k := 2; k <= 6; k++ {
		vals := make([]float64, k*k)
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if i == j {
					vals[i*k+j] = 1
				} else {
					vals[i*k+j] = float64((i+j)%5)/5 - 0.4
				}
			}
		}
		header := make([]string, k)
		for i := range header {
			header[i] = strings.Repeat("h", i+1)
		}

		rec := &recorder{}
		require.NoError(t, heatmap.Render(rec, filled(t, k, vals...), header))
		lines := strings.Split(strings.TrimSuffix(rec.text(), "\n"), "\n")
		assert.Len(t, lines, k+1, "k=%d", k)
		for _, line := range lines {
			assert.Len(t, line, heatmap.CellWidth*(k+1), "k=%d", k)
		}
		assert.Equal(t, heatmap.Default, rec.fg)
		assert.Equal(t, heatmap.Default, rec.bg)
	}
}

func TestRender_LeavesSinkAtDefault(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	rec.SetForeground(heatmap.Magenta)
	rec.SetBackground(heatmap.DarkCyan)
	require.NoError(t, heatmap.Render(rec, filled(t, 2, 1, 0.3, 0.3, 1), []string{"a", "b"}))

	// the title line is written in default colors, not the caller's
	require.NotEmpty(t, rec.writes)
	assert.Equal(t, heatmap.Default, rec.writes[0].fg)
	assert.Equal(t, heatmap.Default, rec.writes[0].bg)
	assert.Equal(t, heatmap.Default, rec.fg)
	assert.Equal(t, heatmap.Default, rec.bg)
}

func TestRender_CellColors(t *testing.T) {
	t.Parallel()

	m := filled(t, 3,
		1, 0.85, math.NaN(),
		0.85, 1, 0.2,
		math.NaN(), 0.2, 1,
	)
	rec := &recorder{}
	require.NoError(t, heatmap.Render(rec, m, []string{"a", "b", "c"}))

	diag, ok := rec.find("    1.00")
	require.True(t, ok)
	assert.Equal(t, heatmap.DiagonalBand.Fg, diag.fg)
	assert.Equal(t, heatmap.DiagonalBand.Bg, diag.bg)

	strong, ok := rec.find("    0.85")
	require.True(t, ok)
	assert.Equal(t, heatmap.Red, strong.fg)
	assert.Equal(t, heatmap.DarkRed, strong.bg)

	weak, ok := rec.find("    0.20")
	require.True(t, ok)
	assert.Equal(t, heatmap.Blue, weak.fg)

	nan, ok := rec.find("     NaN")
	require.True(t, ok)
	assert.Equal(t, heatmap.DegenerateBand.Fg, nan.fg)

	// Labels and header are written with default colors.
	label, ok := rec.find("       a")
	require.True(t, ok)
	assert.Equal(t, heatmap.Default, label.fg)
}

func TestRender_Legend(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	require.NoError(t, heatmap.Render(rec, filled(t, 2, 1, 0, 0, 1), []string{"x", "y"},
		heatmap.WithLegend(true), heatmap.WithSwatchWidth(3), heatmap.WithTitle("CORRELATIONS")))

	out := rec.text()
	assert.True(t, strings.HasPrefix(out, "CORRELAT"))
	_, legend, found := strings.Cut(out, "\nLegend:\n")
	require.True(t, found)

	lines := strings.Split(strings.TrimSuffix(legend, "\n"), "\n")
	require.Len(t, lines, 10)
	for i, band := range heatmap.Bands() {
		assert.Equal(t, "███ "+band.Label(), lines[i])
	}
	assert.Equal(t, heatmap.Default, rec.fg)
}

func TestRender_PreconditionsWriteNothing(t *testing.T) {
	t.Parallel()

	m := filled(t, 2, 1, 0.5, 0.5, 1)

	rec := &recorder{}
	err := heatmap.Render(rec, m, []string{"only-one"})
	require.ErrorIs(t, err, corrheat.ErrSchema)
	assert.Empty(t, rec.writes)

	err = heatmap.Render(rec, nil, nil)
	require.ErrorIs(t, err, corrheat.ErrSchema)
	assert.Empty(t, rec.writes)

	bad := filled(t, 2, 1, 1.5, 1.5, 1)
	err = heatmap.Render(rec, bad, []string{"a", "b"})
	require.ErrorIs(t, err, corrheat.ErrIntegrity)
	assert.Empty(t, rec.writes)

	require.ErrorIs(t, heatmap.Render(nil, m, []string{"a", "b"}), corrheat.ErrConfig)
}

func TestRender_FailureMidGridResetsColors(t *testing.T) {
	t.Parallel()

	m := filled(t, 3,
		1, 0.9, 0.9,
		0.9, 1, 0.9,
		0.9, 0.9, 1,
	)
	// Write #1 is the header line, #2 the first label, #3 the first (colored) cell.
	for _, failAt := range []int{1, 3, 4, 7} {
		rec := &recorder{failAt: failAt}
		err := heatmap.Render(rec, m, []string{"a", "b", "c"})
		require.ErrorIs(t, err, errBoom, "failAt=%d", failAt)
		assert.Equal(t, heatmap.Default, rec.fg, "failAt=%d", failAt)
		assert.Equal(t, heatmap.Default, rec.bg, "failAt=%d", failAt)
	}
}

func TestWithSwatchWidth_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { heatmap.WithSwatchWidth(0) })
	assert.Panics(t, func() { heatmap.WithSwatchWidth(-2) })
}

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestTerminal_ColorAndPlain(t *testing.T) {
	t.Parallel()

	m := filled(t, 2, 1, -0.9, -0.9, 1)
	header := []string{"left", "right"}

	var plain bytes.Buffer
	require.NoError(t, heatmap.Render(heatmap.NewTerminal(&plain, heatmap.WithColor(false)), m, header))
	assert.NotContains(t, plain.String(), "\x1b[")

	var colored bytes.Buffer
	require.NoError(t, heatmap.Render(heatmap.NewTerminal(&colored, heatmap.WithColor(true)), m, header))
	out := colored.String()

	// Diagonal: dark gray on dark gray, closed by a reset sequence.
	assert.Contains(t, out, "\x1b[90;100m    1.00\x1b[0")
	// Strong negative: bright red foreground only.
	assert.Contains(t, out, "\x1b[91m   -0.90\x1b[0")
	assert.Equal(t, plain.String(), sgr.ReplaceAllString(out, ""))
	assert.True(t, strings.HasSuffix(out, "\n"))
}
