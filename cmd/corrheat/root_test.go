// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrheat"
)

const sample = "A,B,C,D\n1,5,1,2\n2,4,3,2\n3,3,2,2\n4,2,5,2\n5,1,4,2\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

// executeIn runs the command with dir as the only config search path.
func executeIn(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, dir)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_Heatmap(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "--no-color", "-a", "pearson", writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "       B   -1.00    1.00   -0.80     NaN", lines[2])
	require.Contains(t, errOut, "level=WARN")
}

func TestRoot_YAMLColumnsRepeat(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "--format", "yaml", "-c", "A,C", "--repeat", "2",
		writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "columns: [A, C]\n"))
}

func TestRoot_TabNoHeader(t *testing.T) {
	t.Parallel()

	src := "1\t4\n2\t3\n3\t1\n"
	out, _, err := execute(t, "--no-color", "-d", "tab", "--no-header", "-k", "2", writeFile(t, "s.tsv", src))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "C-MATRIX    col1    col2\n"))
}

func TestRoot_ConfigFile(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, "corrheat.yaml", "algorithm: pearson\nformat: yaml\ncolumns: [B, A]\n")
	out, _, err := execute(t, "--config", cfg, writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	require.Contains(t, out, "algorithm: pearson\n")
	require.Contains(t, out, "columns: [B, A]\n")

	// flags win over the file
	out, _, err = execute(t, "--config", cfg, "-a", "spearman", writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	require.Contains(t, out, "algorithm: spearman\n")
}

func TestRoot_SearchPathConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".corrheat.yaml"),
		[]byte("format: yaml\nalgorithm: pearson\n"), 0o600))

	out, _, err := executeIn(t, dir, writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	require.Contains(t, out, "algorithm: pearson\n")

	// an empty search dir leaves the defaults in place
	out, _, err = execute(t, "--no-color", writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "C-MATRIX"))
}

func TestDefaultConfigDirs(t *testing.T) {
	t.Parallel()

	dirs := defaultConfigDirs()
	require.NotEmpty(t, dirs)
	require.Equal(t, ".", dirs[len(dirs)-1])
}

func TestRoot_Environment(t *testing.T) {
	t.Setenv("CORRHEAT_NO_COLOR", "true")
	t.Setenv("CORRHEAT_FORMAT", "yaml")

	out, _, err := execute(t, writeFile(t, "s.csv", sample))
	require.NoError(t, err)
	require.Contains(t, out, "algorithm: spearman\n")
}

func TestRoot_Errors(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "s.csv", sample)
	cases := []struct {
		name string
		args []string
	}{
		{"algorithm", []string{"-a", "kendall", path}},
		{"format", []string{"--format", "svg", path}},
		{"delimiter", []string{"-d", ";;", path}},
		{"repeat", []string{"--repeat", "0", path}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), path}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.ErrorIs(t, err, corrheat.ErrConfig)
		})
	}

	_, _, err := execute(t, "--strict", path)
	require.ErrorIs(t, err, corrheat.ErrDegenerateInput)

	_, _, err = execute(t)
	require.Error(t, err)
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]rune{",": ',', ";": ';', "tab": '\t', `\t`: '\t', "TAB": '\t', "|": '|'} {
		got, err := parseDelimiter(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := parseDelimiter("")
	require.ErrorIs(t, err, corrheat.ErrConfig)
}
