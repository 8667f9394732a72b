// SPDX-License-Identifier: MIT

// Package pipeline wires one extract → correlate → render run.
//
// Each Run is independent: nothing is cached between calls, so a Pipeline
// may be run repeatedly or on several files in a row.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/columns"
	"github.com/katalvlaran/corrheat/correlation"
	"github.com/katalvlaran/corrheat/csvsource"
	"github.com/katalvlaran/corrheat/heatmap"
	"github.com/katalvlaran/corrheat/report"
)

// Format selects the output encoding.
type Format string

const (
	// FormatHeatmap renders the color grid (default).
	FormatHeatmap Format = "heatmap"

	// FormatYAML writes a report.Document.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format; "" means FormatHeatmap.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatHeatmap, nil
	case FormatHeatmap, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("pipeline: unknown format %q: %w", name, corrheat.ErrConfig)
	}
}

// Config is everything one run needs besides the source path.
type Config struct {
	Source    csvsource.Options
	Columns   []string // select by header name; empty means the first Count fields
	Count     int      // <= 0 means csvsource.DefaultColumns
	Algorithm correlation.Algorithm
	Strict    bool // zero-variance columns are an error instead of NaN cells
	Legend    bool
	Title     string // "" keeps heatmap.DefaultTitle
	Format    Format
	NoColor   bool
}

// DefaultConfig mirrors the library defaults: Spearman, four leading
// columns, comma-separated with a header, no legend.
func DefaultConfig() Config {
	return Config{
		Source:    csvsource.DefaultOptions(),
		Count:     csvsource.DefaultColumns,
		Algorithm: correlation.DefaultAlgorithm,
		Format:    FormatHeatmap,
	}
}

// Pipeline runs a validated Config.
type Pipeline struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg at the boundary. A nil logger means slog.Default().
func New(cfg Config, logger *slog.Logger) (*Pipeline, error) {
	if !cfg.Algorithm.Valid() {
		return nil, fmt.Errorf("pipeline: algorithm %v: %w", cfg.Algorithm, corrheat.ErrConfig)
	}
	if cfg.Format == "" {
		cfg.Format = FormatHeatmap
	}
	if _, err := ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{cfg: cfg, log: logger}, nil
}

// Extract loads path and selects the configured columns.
func (p *Pipeline) Extract(path string) (*columns.Set, error) {
	tbl, err := csvsource.Load(path, p.cfg.Source)
	if err != nil {
		return nil, err
	}
	p.log.Debug("source loaded", "path", path, "fields", len(tbl.Header), "records", len(tbl.Records))

	var set *columns.Set
	if len(p.cfg.Columns) > 0 {
		set, err = tbl.Select(p.cfg.Columns...)
	} else {
		set, err = tbl.First(p.cfg.Count)
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", path, err)
	}
	p.log.Debug("columns selected", "columns", set.Names(), "rows", set.Rows())

	return set, nil
}

// Run extracts path, correlates it and writes the configured format to w.
func (p *Pipeline) Run(path string, w io.Writer) error {
	set, err := p.Extract(path)
	if err != nil {
		return err
	}

	var opts []correlation.Option
	if p.cfg.Strict {
		opts = append(opts, correlation.WithStrictDegenerate())
	}
	res, err := correlation.Correlate(set, p.cfg.Algorithm, opts...)
	if err != nil {
		return fmt.Errorf("pipeline: %s: %w", path, err)
	}

	header := set.Names()
	if len(res.Degenerate) > 0 {
		bad := make([]string, len(res.Degenerate))
		for i, j := range res.Degenerate {
			bad[i] = header[j]
		}
		p.log.Warn("zero-variance columns rendered as NaN", "columns", bad)
	}
	// *matrix.Dense is a fmt.Stringer; handlers only format it when Debug is enabled.
	p.log.Debug("correlation computed",
		"algorithm", res.Algorithm.String(), "dimension", res.Matrix.Rows(), "matrix", res.Matrix)

	switch p.cfg.Format {
	case FormatYAML:
		doc, err := report.New(res, header, set.Rows())
		if err != nil {
			return err
		}
		return report.Write(w, doc)
	default:
		var termOpts []heatmap.TerminalOption
		if p.cfg.NoColor {
			termOpts = append(termOpts, heatmap.WithColor(false))
		}
		renderOpts := []heatmap.Option{heatmap.WithLegend(p.cfg.Legend)}
		if p.cfg.Title != "" {
			renderOpts = append(renderOpts, heatmap.WithTitle(p.cfg.Title))
		}
		return heatmap.Render(heatmap.NewTerminal(w, termOpts...), res.Matrix, header, renderOpts...)
	}
}
