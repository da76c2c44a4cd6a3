// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot renders marks to a single SVG panel.
//
// A Canvas records the drawing operations of marks in data
// coordinates. When written, the data extent of everything recorded
// determines the axes, and each operation is mapped to pixels.
package svgplot

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-semmap/marks"
	"github.com/aclements/go-semmap/semantic"
	svg "github.com/ajstarks/svgo"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// pxPerPt converts point sizes to SVG pixels.
const pxPerPt = 96.0 / 72

// Margins around the plot panel, in pixels.
const (
	marginLeft   = 50
	marginRight  = 15
	marginTop    = 15
	marginBottom = 30
)

// A Canvas is a marks.Renderer that records marks for SVG output.
type Canvas struct {
	logger *zap.Logger
	ops    []op
	x, y   extent
}

var _ marks.Renderer = (*Canvas)(nil)

type op func(c *svg.SVG, f *frame)

// New returns an empty Canvas. Drawing problems are logged to logger,
// which may be nil.
func New(logger *zap.Logger) *Canvas {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Canvas{logger: logger}
}

// Len returns the number of operations recorded in c.
func (c *Canvas) Len() int {
	return len(c.ops)
}

// extent is the range of the finite values seen on one axis.
type extent struct {
	lo, hi float64
	ok     bool
}

func (e *extent) include(vs ...float64) {
	for _, v := range vs {
		if !isFinite(v) {
			continue
		}
		if !e.ok {
			e.lo, e.hi, e.ok = v, v, true
			continue
		}
		e.lo = math.Min(e.lo, v)
		e.hi = math.Max(e.hi, v)
	}
}

func (e extent) scale() scale.Linear {
	s := scale.Linear{Min: 0, Max: 1}
	if e.ok {
		s.Min, s.Max = e.lo, e.hi
	}
	s.Nice(scale.TickOptions{Max: 6})
	return s
}

// frame maps data coordinates into the pixel rectangle of the panel.
type frame struct {
	x, y            scale.Linear
	left, top, w, h float64
}

func (f *frame) px(x float64) float64 {
	return f.left + f.x.Map(x)*f.w
}

func (f *frame) py(y float64) float64 {
	return f.top + (1-f.y.Map(y))*f.h
}

// Marker records a marker at (x, y).
func (c *Canvas) Marker(x, y float64, m semantic.Marker, size float64, face, edge marks.Paint, edgeWidth float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	c.x.include(x)
	c.y.include(y)
	paths := m.Paths()
	if len(paths) == 0 {
		c.logger.Warn("marker has no outline; ignoring", zap.Stringer("marker", m))
		return
	}
	closed := m.Filled()
	c.ops = append(c.ops, func(canvas *svg.SVG, f *frame) {
		cx, cy := f.px(x), f.py(y)
		r := size / 2 * pxPerPt
		var d []byte
		for _, path := range paths {
			for i, p := range path {
				if i == 0 {
					d = append(d, 'M')
				} else {
					d = append(d, 'L')
				}
				d = appendCoord(d, cx+r*p.X, cy-r*p.Y)
			}
			if closed {
				d = append(d, 'Z')
			}
		}
		style := []string{cssPaint("fill", face), cssPaint("stroke", edge)}
		if edge.Alpha > 0 {
			style = append(style, fmt.Sprintf("stroke-width:%.4g", edgeWidth*pxPerPt))
		}
		canvas.Path(string(d), strings.Join(style, ";"))
	})
}

// Polyline records a line through (xs[i], ys[i]). Non-finite points
// break the line.
func (c *Canvas) Polyline(xs, ys []float64, stroke marks.Paint, width float64, dash semantic.Dash) {
	if len(xs) < 2 {
		c.logger.Warn("cannot draw line through fewer than 2 points; ignoring", zap.Int("points", len(xs)))
		return
	}
	c.x.include(xs...)
	c.y.include(ys...)
	c.ops = append(c.ops, func(canvas *svg.SVG, f *frame) {
		d := tracePath(f, xs, ys, false)
		if len(d) == 0 {
			return
		}
		style := []string{"fill:none", cssPaint("stroke", stroke), fmt.Sprintf("stroke-width:%.4g", width*pxPerPt)}
		if !dash.Solid() {
			// Dashes scale with the line width.
			parts := make([]string, len(dash.Pattern))
			for i, v := range dash.Pattern {
				parts[i] = strconv.FormatFloat(v*width*pxPerPt, 'g', 4, 64)
			}
			style = append(style, "stroke-dasharray:"+strings.Join(parts, ","))
			if dash.Offset != 0 {
				style = append(style, fmt.Sprintf("stroke-dashoffset:%.4g", dash.Offset*width*pxPerPt))
			}
		}
		canvas.Path(string(d), strings.Join(style, ";"))
	})
}

// Polygon records a filled polygon through (xs[i], ys[i]).
func (c *Canvas) Polygon(xs, ys []float64, fill marks.Paint) {
	if len(xs) < 3 {
		c.logger.Warn("cannot fill polygon with fewer than 3 points; ignoring", zap.Int("points", len(xs)))
		return
	}
	c.x.include(xs...)
	c.y.include(ys...)
	c.ops = append(c.ops, func(canvas *svg.SVG, f *frame) {
		d := tracePath(f, xs, ys, true)
		if len(d) == 0 {
			return
		}
		canvas.Path(string(d), cssPaint("fill", fill)+";stroke:none")
	})
}

// tracePath returns the SVG path data through the finite points of xs
// and ys.
func tracePath(f *frame, xs, ys []float64, close bool) []byte {
	var d []byte
	inLine := false
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			inLine = false
			continue
		}
		if !inLine {
			d = append(d, 'M')
			inLine = true
		} else {
			d = append(d, 'L')
		}
		d = appendCoord(d, f.px(xs[i]), f.py(ys[i]))
	}
	if close && len(d) > 0 {
		d = append(d, 'Z')
	}
	return d
}

func appendCoord(d []byte, x, y float64) []byte {
	d = strconv.AppendFloat(d, x, 'f', 2, 64)
	d = append(d, ' ')
	d = strconv.AppendFloat(d, y, 'f', 2, 64)
	return d
}

func cssPaint(prop string, p marks.Paint) string {
	if p.Alpha <= 0 {
		return prop + ":none"
	}
	s := prop + ":" + p.Color.Clamped().Hex()
	if p.Alpha < 1 {
		s += fmt.Sprintf(";%s-opacity:%.4g", prop, p.Alpha)
	}
	return s
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WriteSVG writes c as a width by height pixel SVG document to w.
func (c *Canvas) WriteSVG(w io.Writer, width, height int) error {
	ew := &errWriter{w: w}
	f := &frame{
		x:    c.x.scale(),
		y:    c.y.scale(),
		left: marginLeft,
		top:  marginTop,
		w:    float64(width - marginLeft - marginRight),
		h:    float64(height - marginTop - marginBottom),
	}
	if f.w <= 0 || f.h <= 0 {
		return errors.Newf("%dx%d is too small for the plot margins", width, height)
	}

	canvas := svg.New(ew)
	canvas.Start(width, height, `font-size="10px" font-family="Helvetica,Arial,sans-serif"`)
	canvas.Rect(marginLeft, marginTop, int(f.w), int(f.h), "fill:#eee")
	renderAxis(canvas, f, 'x')
	renderAxis(canvas, f, 'y')

	canvas.ClipPath(`id="panel"`)
	canvas.Rect(marginLeft, marginTop, int(f.w), int(f.h))
	canvas.ClipEnd()
	canvas.Group(`clip-path="url(#panel)"`)
	for _, op := range c.ops {
		op(canvas, f)
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// renderAxis draws the grid lines and tick labels of one axis.
func renderAxis(canvas *svg.SVG, f *frame, dir rune) {
	s := f.x
	if dir == 'y' {
		s = f.y
	}
	major, _ := s.Ticks(scale.TickOptions{Max: 6})
	var grid []byte
	for _, t := range major {
		label := strconv.FormatFloat(t, 'g', 6, 64)
		if dir == 'x' {
			x := f.px(t)
			grid = append(grid, 'M')
			grid = appendCoord(grid, x, f.top)
			grid = append(grid, 'V')
			grid = strconv.AppendFloat(grid, f.top+f.h, 'f', 2, 64)
			canvas.Text(int(x), int(f.top+f.h+4), label, `text-anchor="middle" dy="1em" fill="#666"`)
		} else {
			y := f.py(t)
			grid = append(grid, 'M')
			grid = appendCoord(grid, f.left, y)
			grid = append(grid, 'H')
			grid = strconv.AppendFloat(grid, f.left+f.w, 'f', 2, 64)
			canvas.Text(int(f.left-4), int(y), label, `text-anchor="end" dy=".3em" fill="#666"`)
		}
	}
	if len(grid) > 0 {
		canvas.Path(string(grid), "stroke:#fff;stroke-width:1")
	}
}

// errWriter remembers the first write error, since svgo does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err == nil {
		_, e.err = e.w.Write(p)
	}
	return len(p), nil
}
