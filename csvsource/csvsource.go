// SPDX-License-Identifier: MIT

// Package csvsource reads delimited text into numeric column sets.
//
// It is the extraction boundary of the pipeline: given a source and a column
// selection, it returns a columns.Set whose Names() is the header.
//
//	tbl, err := csvsource.Load("sample.csv", csvsource.DefaultOptions())
//	set, err := tbl.First(4)               // first four fields
//	set, err := tbl.Select("temp", "wind") // by header name
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/columns"
)

// DefaultColumns is how many leading fields First selects when asked for k <= 0.
const DefaultColumns = 4

// Options controls how the source is tokenized.
//
// Fields:
//   - Delimiter: field separator (default ',').
//   - HasHeader: first record holds column names (default true). Without a
//     header, names are synthesized as col1, col2, ...
//   - Comment: lines starting with this rune are skipped (0 disables).
//   - TrimSpace: trim surrounding whitespace from every field (default true).
type Options struct {
	Delimiter rune
	HasHeader bool
	Comment   rune
	TrimSpace bool
}

// DefaultOptions returns comma-separated, header-first, trimmed parsing.
func DefaultOptions() Options {
	return Options{Delimiter: ',', HasHeader: true, TrimSpace: true}
}

// Table is the raw tokenized source: a header and equally long records.
type Table struct {
	Header  []string
	Records [][]string
}

// Load opens path and parses it with Read.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvsource.Load: %w", err)
	}
	defer f.Close()

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("csvsource.Load %s: %w", path, err)
	}

	return t, nil
}

// Read tokenizes r. Records with a field count differing from the first
// record fail with corrheat.ErrSchema; an invalid delimiter or comment rune
// fails with corrheat.ErrConfig before anything is read.
func Read(r io.Reader, opts Options) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.Comment = opts.Comment
	// Leading-space trimming would swallow empty fields under a whitespace delimiter.
	cr.TrimLeadingSpace = opts.TrimSpace && !unicode.IsSpace(opts.Delimiter)

	rows, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("csvsource.Read: %w: %w", corrheat.ErrSchema, err)
		}
		return nil, fmt.Errorf("csvsource.Read: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csvsource.Read: empty source: %w", corrheat.ErrSchema)
	}

	if opts.TrimSpace {
		for _, row := range rows {
			for i := range row {
				row[i] = strings.TrimSpace(row[i])
			}
		}
	}

	t := &Table{}
	if opts.HasHeader {
		t.Header, t.Records = rows[0], rows[1:]
	} else {
		t.Header = make([]string, len(rows[0]))
		for i := range t.Header {
			t.Header[i] = "col" + strconv.Itoa(i+1)
		}
		t.Records = rows
	}

	return t, nil
}

func validateOptions(opts Options) error {
	bad := func(r rune) bool {
		return r == 0 || r == '\r' || r == '\n' || r == '"' || r == utf8.RuneError || !utf8.ValidRune(r)
	}
	if bad(opts.Delimiter) {
		return fmt.Errorf("csvsource: invalid delimiter %q: %w", opts.Delimiter, corrheat.ErrConfig)
	}
	if opts.Comment != 0 && (bad(opts.Comment) || opts.Comment == opts.Delimiter) {
		return fmt.Errorf("csvsource: invalid comment rune %q: %w", opts.Comment, corrheat.ErrConfig)
	}

	return nil
}

// First selects the first k fields of every record. k <= 0 means DefaultColumns.
// Fewer than k fields, or an unparsable value, fails with corrheat.ErrSchema.
func (t *Table) First(k int) (*columns.Set, error) {
	if k <= 0 {
		k = DefaultColumns
	}
	if len(t.Header) < k {
		return nil, fmt.Errorf("csvsource: source has %d fields, want %d: %w",
			len(t.Header), k, corrheat.ErrSchema)
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return t.columns(idx)
}

// Select picks fields by header name, in the given order. An unknown name
// fails with corrheat.ErrSchema. With duplicate header names the first wins.
func (t *Table) Select(names ...string) (*columns.Set, error) {
	pos := make(map[string]int, len(t.Header))
	for i := len(t.Header) - 1; i >= 0; i-- {
		pos[t.Header[i]] = i
	}
	idx := make([]int, len(names))
	for i, name := range names {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("csvsource: unknown column %q (have %q): %w",
				name, t.Header, corrheat.ErrSchema)
		}
		idx[i] = p
	}

	return t.columns(idx)
}

func (t *Table) columns(idx []int) (*columns.Set, error) {
	accessors := make([]columns.Accessor[[]string], len(idx))
	for i, p := range idx {
		accessors[i] = fieldAccessor(t.Header[p], p)
	}

	return columns.FromRecords(t.Records, accessors...)
}

func fieldAccessor(name string, p int) columns.Accessor[[]string] {
	return columns.Accessor[[]string]{
		Name: name,
		Value: func(rec []string) (float64, error) {
			if p >= len(rec) {
				return 0, fmt.Errorf("field %d missing", p+1)
			}
			return strconv.ParseFloat(rec[p], 64)
		},
	}
}
