// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/corrheat"
	"github.com/katalvlaran/corrheat/correlation"
	"github.com/katalvlaran/corrheat/csvsource"
	"github.com/katalvlaran/corrheat/pipeline"
)

const (
	configName = ".corrheat"
	envPrefix  = "CORRHEAT"
)

// Flag and config keys; a config file or CORRHEAT_* variable uses the same
// names (dashes become underscores in the environment).
const (
	keyAlgorithm = "algorithm"
	keyLegend    = "legend"
	keyTitle     = "title"
	keyDelimiter = "delimiter"
	keyNoHeader  = "no-header"
	keyColumns   = "columns"
	keyCount     = "count"
	keyStrict    = "strict"
	keyFormat    = "format"
	keyNoColor   = "no-color"
	keyRepeat    = "repeat"
	keyVerbose   = "verbose"
)

// newRootCmd builds the command. configDirs are searched for .corrheat.yaml
// when --config is not given; none means $HOME and the working directory.
func newRootCmd(stdout, stderr io.Writer, configDirs ...string) *cobra.Command {
	v := viper.New()
	if len(configDirs) == 0 {
		configDirs = defaultConfigDirs()
	}
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "corrheat [flags] FILE",
		Short: "Correlation heatmap for delimited numeric data",
		Long: `corrheat reads a delimited text file, computes the pairwise correlation
matrix of the selected numeric columns (Spearman by default, or Pearson)
and prints it as a color-banded grid.

Columns are taken by name with --columns, or the first --count fields.
Constant columns show NaN unless --strict turns them into an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cfgFile, configDirs)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(v)
			if err != nil {
				return err
			}
			repeat := v.GetInt(keyRepeat)
			if repeat < 1 {
				return fmt.Errorf("--%s must be >= 1, got %d: %w", keyRepeat, repeat, corrheat.ErrConfig)
			}

			p, err := pipeline.New(cfg, newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose)))
			if err != nil {
				return err
			}
			for i := 0; i < repeat; i++ {
				if err = p.Run(args[0], cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.corrheat.yaml or ./.corrheat.yaml)")
	f.StringP(keyAlgorithm, "a", correlation.DefaultAlgorithm.String(), "correlation algorithm: spearman or pearson")
	f.BoolP(keyLegend, "l", false, "print the color band legend after the grid")
	f.String(keyTitle, "", "top-left title cell (default \"C-MATRIX\")")
	f.StringP(keyDelimiter, "d", ",", `field delimiter: a single character or "tab"`)
	f.Bool(keyNoHeader, false, "the first record is data; columns are named col1..colN")
	f.StringSliceP(keyColumns, "c", nil, "columns to correlate, by header name")
	f.IntP(keyCount, "k", csvsource.DefaultColumns, "number of leading columns when --columns is not set")
	f.Bool(keyStrict, false, "fail on constant columns instead of printing NaN")
	f.String(keyFormat, string(pipeline.FormatHeatmap), "output format: heatmap or yaml")
	f.Bool(keyNoColor, false, "disable ANSI colors")
	f.Int(keyRepeat, 1, "run the whole pipeline this many times")
	f.BoolP(keyVerbose, "v", false, "debug logging on stderr")

	_ = v.BindPFlags(f)

	return cmd
}

func defaultConfigDirs() []string {
	if home, err := os.UserHomeDir(); err == nil {
		return []string{home, "."}
	}

	return []string{"."}
}

// loadConfig layers the config file and environment under the bound flags.
func loadConfig(v *viper.Viper, cfgFile string, dirs []string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w: %w", corrheat.ErrConfig, err)
	}

	return nil
}

func buildConfig(v *viper.Viper) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()

	alg, err := correlation.ParseAlgorithm(v.GetString(keyAlgorithm))
	if err != nil {
		return cfg, err
	}
	format, err := pipeline.ParseFormat(v.GetString(keyFormat))
	if err != nil {
		return cfg, err
	}
	delim, err := parseDelimiter(v.GetString(keyDelimiter))
	if err != nil {
		return cfg, err
	}

	cfg.Algorithm = alg
	cfg.Format = format
	cfg.Source.Delimiter = delim
	cfg.Source.HasHeader = !v.GetBool(keyNoHeader)
	cfg.Columns = v.GetStringSlice(keyColumns)
	cfg.Count = v.GetInt(keyCount)
	cfg.Strict = v.GetBool(keyStrict)
	cfg.Legend = v.GetBool(keyLegend)
	cfg.Title = v.GetString(keyTitle)
	cfg.NoColor = v.GetBool(keyNoColor)

	return cfg, nil
}

// parseDelimiter accepts one character, or "tab" / `\t` for a tab.
func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q: %w", keyDelimiter, s, corrheat.ErrConfig)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
