// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/internal/svgplot"
	"github.com/aclements/go-semmap/marks"
	"github.com/aclements/go-semmap/rc"
	"github.com/aclements/go-semmap/semantic"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// config is the parsed command line.
type config struct {
	x, y, ymin string

	// Channel columns. Empty means the channel is not mapped.
	color, marker, linestyle, size, alpha string

	palette       string
	mark          string
	out           string
	rcPath        string
	jitter        string
	seed          int64
	width, height int
	verbose       bool
}

// A channel ties a command line column to the semantic that maps it.
type channel struct {
	name, flag string
	column     string
	build      func(column string, opts []semantic.Option) (semantic.Semantic, error)
}

func (cfg *config) channels() []channel {
	return []channel{
		{"color", "color", cfg.color, func(col string, opts []semantic.Option) (semantic.Semantic, error) {
			var spec semantic.ValueSpec
			if cfg.palette != "" {
				spec = semantic.Named(cfg.palette)
			}
			return semantic.NewColor(spec, col, opts...)
		}},
		{"marker", "marker", cfg.marker, func(col string, opts []semantic.Option) (semantic.Semantic, error) {
			return semantic.NewMarker(semantic.ValueSpec{}, col, opts...)
		}},
		{"linestyle", "linestyle", cfg.linestyle, func(col string, opts []semantic.Option) (semantic.Semantic, error) {
			return semantic.NewLineStyle(semantic.ValueSpec{}, col, opts...)
		}},
		{"pointsize", "size", cfg.size, func(col string, opts []semantic.Option) (semantic.Semantic, error) {
			return semantic.NewContinuous(semantic.Range(2, 10), col, opts...)
		}},
		{"alpha", "alpha", cfg.alpha, func(col string, opts []semantic.Option) (semantic.Semantic, error) {
			return semantic.NewAlpha(semantic.ValueSpec{}, col, opts...)
		}},
	}
}

// parseJitter parses "x" or "x,y" jitter amounts.
func parseJitter(s string) (x, y float64, err error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return 0, 0, errors.Newf("bad jitter %q: want x or x,y", s)
	}
	var vals [2]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, errors.Newf("bad jitter %q: amounts must be non-negative numbers", s)
		}
		vals[i] = v
	}
	return vals[0], vals[1], nil
}

// A plotter is a mark that draws itself to a renderer.
type plotter interface {
	Plot(data *table.Table, r marks.Renderer) error
}

// plot maps data through the configured channels, draws the
// configured mark and writes the result to w as SVG.
func plot(cfg *config, data *table.Table, logger *zap.Logger, w io.Writer) error {
	params := rc.Default()
	if cfg.rcPath != "" {
		var err error
		if params, err = rc.Load(cfg.rcPath); err != nil {
			return err
		}
	}

	b := new(table.Builder)
	column := func(name, flag string) (table.Slice, error) {
		col := data.Column(name)
		if col == nil {
			return nil, errors.Newf("--%s: no column %q in input", flag, name)
		}
		return col, nil
	}
	xs, err := column(cfg.x, "x")
	if err != nil {
		return err
	}
	ys, err := column(cfg.y, "y")
	if err != nil {
		return err
	}
	b.Add("x", xs)
	if cfg.mark == "area" {
		b.Add("ymax", ys)
		if cfg.ymin != "" {
			lo, err := column(cfg.ymin, "ymin")
			if err != nil {
				return err
			}
			b.Add("ymin", lo)
		} else {
			b.Add("ymin", make([]float64, data.Len()))
		}
	} else {
		b.Add("y", ys)
	}

	opts := []semantic.Option{semantic.WithLogger(logger), semantic.WithParams(params)}
	mappings := map[string]semantic.Mapping{}
	for _, ch := range cfg.channels() {
		if ch.column == "" {
			continue
		}
		col, err := column(ch.column, ch.flag)
		if err != nil {
			return err
		}
		sem, err := ch.build(ch.column, opts)
		if err != nil {
			return errors.Wrapf(err, "%s", ch.name)
		}
		m, err := sem.Setup(col, nil)
		if err != nil {
			return errors.Wrapf(err, "%s", ch.name)
		}
		logger.Debug("mapped channel", zap.String("channel", ch.name), zap.String("column", ch.column))
		b.Add(ch.name, col)
		mappings[ch.name] = m
	}
	tab := b.Done()

	var mark plotter
	var base *marks.Mark
	switch cfg.mark {
	case "point", "":
		p := marks.NewPoint()
		if p.JitterX, p.JitterY, err = parseJitter(cfg.jitter); err != nil {
			return err
		}
		if tab, err = p.Adjust(tab, rand.New(rand.NewSource(cfg.seed))); err != nil {
			return err
		}
		mark, base = p, &p.Mark
	case "line":
		l := marks.NewLine()
		mark, base = l, &l.Mark
	case "area":
		a := marks.NewArea()
		mark, base = a, &a.Mark
	default:
		return errors.Newf("unknown mark %q: want point, line or area", cfg.mark)
	}
	base.Mappings = mappings
	base.Params = params

	canvas := svgplot.New(logger)
	if err := mark.Plot(tab, canvas); err != nil {
		return err
	}
	logger.Debug("rendering", zap.Int("rows", tab.Len()), zap.Int("ops", canvas.Len()))
	return canvas.WriteSVG(w, cfg.width, cfg.height)
}
