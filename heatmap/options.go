// SPDX-License-Identifier: MIT

package heatmap

// ---------- Defaults (single source of truth) ----------

const (
	// CellWidth is the fixed width of every grid cell, title and labels included.
	CellWidth = 8

	// DefaultTitle fills the top-left cell.
	DefaultTitle = "C-MATRIX"

	// DefaultShowLegend controls whether the band legend follows the grid.
	DefaultShowLegend = false

	// DefaultSwatchWidth is the number of block glyphs per legend swatch.
	DefaultSwatchWidth = 8
)

const panicSwatchWidthInvalid = "heatmap: WithSwatchWidth: width must be > 0"

// Option configures Render.
type Option func(*Options)

// Options is the resolved Render configuration.
type Options struct {
	title       string
	showLegend  bool
	swatchWidth int
}

// WithLegend toggles the legend printed after the grid.
func WithLegend(show bool) Option {
	return func(o *Options) { o.showLegend = show }
}

// WithTitle replaces the top-left title; it is truncated to CellWidth.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithSwatchWidth sets the legend swatch width. Panics if width <= 0.
func WithSwatchWidth(width int) Option {
	if width <= 0 {
		panic(panicSwatchWidthInvalid)
	}

	return func(o *Options) { o.swatchWidth = width }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		title:       DefaultTitle,
		showLegend:  DefaultShowLegend,
		swatchWidth: DefaultSwatchWidth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
