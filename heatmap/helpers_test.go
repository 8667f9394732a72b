// SPDX-License-Identifier: MIT

package heatmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/corrheat/heatmap"
	"github.com/katalvlaran/corrheat/matrix"
)

var errBoom = errors.New("boom")

// write is one Sink.Write call with the colors active at that moment.
type write struct {
	text   string
	fg, bg heatmap.Color
}

// recorder is an in-memory Sink that tracks color state.
// failAt > 0 makes the failAt-th Write (1-based) and every later one fail.
type recorder struct {
	fg, bg heatmap.Color
	writes []write
	failAt int
	calls  int
}

func (r *recorder) SetForeground(c heatmap.Color) { r.fg = c }
func (r *recorder) SetBackground(c heatmap.Color) { r.bg = c }
func (r *recorder) Reset()                        { r.fg, r.bg = heatmap.Default, heatmap.Default }

func (r *recorder) Write(s string) error {
	r.calls++
	if r.failAt > 0 && r.calls >= r.failAt {
		return errBoom
	}
	r.writes = append(r.writes, write{text: s, fg: r.fg, bg: r.bg})

	return nil
}

func (r *recorder) text() string {
	var b strings.Builder
	for _, w := range r.writes {
		b.WriteString(w.text)
	}

	return b.String()
}

// find returns the first write whose text equals s.
func (r *recorder) find(s string) (write, bool) {
	for _, w := range r.writes {
		if w.text == s {
			return w, true
		}
	}

	return write{}, false
}

func filled(t *testing.T, k int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(k, k, matrix.WithAllowNaN())
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if err = m.Set(i, j, vals[i*k+j]); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}
