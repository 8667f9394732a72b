// SPDX-License-Identifier: MIT

package heatmap

import "github.com/fatih/color"

// Color is a 16-color terminal palette entry plus Default (no attribute).
type Color int

// Palette. Dark* are the normal-intensity ANSI colors; the plain names are
// their bright counterparts. Gray is normal white; White is bright white.
const (
	Default Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

var colorNames = [...]string{
	Default:     "default",
	Black:       "black",
	DarkBlue:    "dark-blue",
	DarkGreen:   "dark-green",
	DarkCyan:    "dark-cyan",
	DarkRed:     "dark-red",
	DarkMagenta: "dark-magenta",
	DarkYellow:  "dark-yellow",
	Gray:        "gray",
	DarkGray:    "dark-gray",
	Blue:        "blue",
	Green:       "green",
	Cyan:        "cyan",
	Red:         "red",
	Magenta:     "magenta",
	Yellow:      "yellow",
	White:       "white",
}

// String returns the palette name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}

	return colorNames[c]
}

var fgAttrs = map[Color]color.Attribute{
	Black:       color.FgBlack,
	DarkBlue:    color.FgBlue,
	DarkGreen:   color.FgGreen,
	DarkCyan:    color.FgCyan,
	DarkRed:     color.FgRed,
	DarkMagenta: color.FgMagenta,
	DarkYellow:  color.FgYellow,
	Gray:        color.FgWhite,
	DarkGray:    color.FgHiBlack,
	Blue:        color.FgHiBlue,
	Green:       color.FgHiGreen,
	Cyan:        color.FgHiCyan,
	Red:         color.FgHiRed,
	Magenta:     color.FgHiMagenta,
	Yellow:      color.FgHiYellow,
	White:       color.FgHiWhite,
}

var bgAttrs = map[Color]color.Attribute{
	Black:       color.BgBlack,
	DarkBlue:    color.BgBlue,
	DarkGreen:   color.BgGreen,
	DarkCyan:    color.BgCyan,
	DarkRed:     color.BgRed,
	DarkMagenta: color.BgMagenta,
	DarkYellow:  color.BgYellow,
	Gray:        color.BgWhite,
	DarkGray:    color.BgHiBlack,
	Blue:        color.BgHiBlue,
	Green:       color.BgHiGreen,
	Cyan:        color.BgHiCyan,
	Red:         color.BgHiRed,
	Magenta:     color.BgHiMagenta,
	Yellow:      color.BgHiYellow,
	White:       color.BgHiWhite,
}
