// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command semplot plots a CSV table as SVG, mapping columns to visual
// properties.
//
// The input has a header row. Columns whose cells are all numbers are
// numeric; any other column is categorical. Each of --color, --marker,
// --linestyle, --size and --alpha names a column to map to that
// property. Numeric columns map to continuous ranges where the
// property allows it, and categorical columns map each distinct value
// to a distinct property value.
//
// For example,
//
//	semplot --x time --y speed --color machine --mark line -o out.svg runs.csv
//
// The SEMPLOT_FLAGS environment variable holds flags that are applied
// before those on the command line. It is split into words following
// shell quoting rules.
package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	args, err := withEnvFlags(os.Getenv("SEMPLOT_FLAGS"), os.Args[1:])
	if err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(2)
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withEnvFlags returns args preceded by the words of env.
func withEnvFlags(env string, args []string) ([]string, error) {
	words, err := shellquote.Split(env)
	if err != nil {
		return nil, errors.Wrap(err, "SEMPLOT_FLAGS")
	}
	return append(words, args...), nil
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "semplot [flags] [input.csv]",
		Short: "Plot a CSV table with semantically mapped colors, markers and line styles",
		Long: `semplot reads a CSV table (from the named file, or standard input if
none is given or the name is "-") and writes an SVG plot.

Examples:
  semplot --color kind data.csv > out.svg
  semplot --mark line --x t --y v --linestyle run -o out.svg data.csv
  semplot --jitter 0.2,0 --seed 7 --marker group data.csv`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.verbose, stderr)
			defer logger.Sync()
			return run(cfg, args, stdin, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfg.x, "x", "x", "`column` for horizontal positions")
	f.StringVar(&cfg.y, "y", "y", "`column` for vertical positions (the upper edge for areas)")
	f.StringVar(&cfg.ymin, "ymin", "", "`column` for the lower edge of areas (default 0)")
	f.StringVar(&cfg.color, "color", "", "`column` to map to color")
	f.StringVar(&cfg.marker, "marker", "", "`column` to map to marker shape")
	f.StringVar(&cfg.linestyle, "linestyle", "", "`column` to map to line dashes")
	f.StringVar(&cfg.size, "size", "", "`column` to map to point size")
	f.StringVar(&cfg.alpha, "alpha", "", "`column` to map to opacity")
	f.StringVar(&cfg.palette, "palette", "", "color palette or colormap `name` (e.g. deep, husl, viridis, ch:)")
	f.StringVar(&cfg.mark, "mark", "point", "mark to draw: point, line or area")
	f.StringVarP(&cfg.out, "output", "o", "", "write SVG to `file` (default stdout)")
	f.StringVar(&cfg.rcPath, "rc", "", "load parameters from TOML or YAML `file`")
	f.StringVar(&cfg.jitter, "jitter", "", "point jitter `x[,y]` in data units")
	f.Int64Var(&cfg.seed, "seed", 1, "random `seed` for jitter")
	f.IntVar(&cfg.width, "width", 640, "plot width in `pixels`")
	f.IntVar(&cfg.height, "height", 480, "plot height in `pixels`")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debugging detail")
	return cmd
}

// newLogger returns a console logger on w. Warnings are always shown.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Named("semplot")
}

func run(cfg *config, args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	in, name := stdin, "<stdin>"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, args[0]
	}
	data, err := loadCSV(in)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	logger.Debug("loaded table", zap.String("input", name), zap.Int("rows", data.Len()), zap.Strings("columns", data.Columns()))

	out := stdout
	if cfg.out != "" {
		f, err := os.Create(cfg.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := plot(cfg, data, logger, out); err != nil {
		return err
	}
	if f, ok := out.(*os.File); ok && cfg.out != "" {
		return f.Close()
	}
	return nil
}
