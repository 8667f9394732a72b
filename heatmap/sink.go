// SPDX-License-Identifier: MIT

package heatmap

import (
	"io"

	"github.com/fatih/color"
)

// Sink is a color-capable text output. Colors set through SetForeground and
// SetBackground apply to subsequent Writes until Reset.
type Sink interface {
	SetForeground(c Color)
	SetBackground(c Color)
	Reset()
	Write(s string) error
}

// Terminal is a Sink over an io.Writer that emits ANSI SGR sequences through
// fatih/color. Each colored Write is wrapped by Color.Sprint in its own
// set/reset pair, so the underlying terminal never stays colored between calls.
type Terminal struct {
	w      io.Writer
	fg, bg Color
	force  *bool // nil: follow color.NoColor (tty detection, NO_COLOR)
}

var _ Sink = (*Terminal)(nil)

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithColor forces escape sequences on (true) or off (false), overriding
// fatih/color's tty detection.
func WithColor(enabled bool) TerminalOption {
	return func(t *Terminal) { t.force = &enabled }
}

// NewTerminal returns a Terminal writing to w. A nil w means color.Output,
// fatih/color's colorable stdout.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	if w == nil {
		w = color.Output
	}
	t := &Terminal{w: w}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	return t
}

// SetForeground selects the foreground for subsequent writes.
func (t *Terminal) SetForeground(c Color) { t.fg = c }

// SetBackground selects the background for subsequent writes.
func (t *Terminal) SetBackground(c Color) { t.bg = c }

// Reset returns both channels to the terminal default.
func (t *Terminal) Reset() { t.fg, t.bg = Default, Default }

// Write prints s with the current colors.
func (t *Terminal) Write(s string) error {
	var attrs []color.Attribute
	if a, ok := fgAttrs[t.fg]; ok {
		attrs = append(attrs, a)
	}
	if a, ok := bgAttrs[t.bg]; ok {
		attrs = append(attrs, a)
	}
	if len(attrs) == 0 {
		_, err := io.WriteString(t.w, s)
		return err
	}

	c := color.New(attrs...)
	if t.force != nil {
		if *t.force {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	_, err := io.WriteString(t.w, c.Sprint(s))

	return err
}
