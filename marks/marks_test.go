// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/palettes"
	"github.com/aclements/go-semmap/rc"
	"github.com/aclements/go-semmap/semantic"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markerCall struct {
	x, y       float64
	m          semantic.Marker
	size       float64
	face, edge Paint
	edgeWidth  float64
}

type lineCall struct {
	xs, ys []float64
	stroke Paint
	width  float64
	dash   semantic.Dash
}

type polyCall struct {
	xs, ys []float64
	fill   Paint
}

type recorder struct {
	markers []markerCall
	lines   []lineCall
	polys   []polyCall
}

func (r *recorder) Marker(x, y float64, m semantic.Marker, size float64, face, edge Paint, edgeWidth float64) {
	r.markers = append(r.markers, markerCall{x, y, m, size, face, edge, edgeWidth})
}

func (r *recorder) Polyline(xs, ys []float64, stroke Paint, width float64, dash semantic.Dash) {
	r.lines = append(r.lines, lineCall{xs, ys, stroke, width, dash})
}

func (r *recorder) Polygon(xs, ys []float64, fill Paint) {
	r.polys = append(r.polys, polyCall{xs, ys, fill})
}

func mustColor(t *testing.T, spec string) colorful.Color {
	c, err := palettes.ToRGB(spec, nil)
	require.NoError(t, err)
	return c
}

func TestFeature(t *testing.T) {
	v, err := Constant(3).Value(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = RC("scatter.marker").Value(nil)
	require.NoError(t, err)
	assert.Equal(t, "o", v)

	p := rc.Default()
	p.Lines.LineWidth = 7
	v, err = RC("lines.linewidth").Value(p)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = RC("no.such.key").Value(nil)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3}).
		Add("color", []string{"a", "b", "a"}).
		Done()

	sem, err := semantic.NewColor(semantic.List("red", "blue"), "color")
	require.NoError(t, err)
	mapping, err := sem.Setup(data.MustColumn("color"), nil)
	require.NoError(t, err)

	m := NewPoint()
	m.Mappings["color"] = mapping
	got, err := m.Resolve("color", data, m.toColor)
	require.NoError(t, err)
	red, blue := mustColor(t, "red"), mustColor(t, "blue")
	assert.Equal(t, []interface{}{red, blue, red}, got)

	// Unmapped channels broadcast their feature.
	got, err = m.Resolve("pointsize", data, toFloat)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{5.0, 5.0, 5.0}, got)

	_, err = m.Resolve("nonesuch", data, toFloat)
	assert.Error(t, err)
}

func TestResolveUnmappedColumn(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2}).
		Add("pointsize", []int{3, 4}).
		Done()
	m := NewPoint()
	got, err := m.Resolve("pointsize", data, toFloat)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{3.0, 4.0}, got)
}

func TestPointAdjust(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{10, 20, 30, 40}
	data := table.NewBuilder(nil).Add("x", xs).Add("y", ys).Done()

	p := NewPoint()
	same, err := p.Adjust(data, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Same(t, data, same)

	p.JitterX = .25
	adj1, err := p.Adjust(data, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	adj2, err := p.Adjust(data, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// The input is not modified.
	assert.Equal(t, []float64{1, 2, 3, 4}, data.MustColumn("x"))
	assert.Equal(t, []float64{1, 2, 3, 4}, xs)

	// The same seed gives the same jitter.
	assert.Equal(t, adj1.MustColumn("x"), adj2.MustColumn("x"))

	jx := adj1.MustColumn("x").([]float64)
	for i := range xs {
		assert.InDelta(t, xs[i], jx[i], .25)
	}
	assert.Equal(t, ys, adj1.MustColumn("y"))
}

func TestPointPlot(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3}).
		Add("y", []float64{4, 5, 6}).
		Add("marker", []string{"p", "q", "r"}).
		Done()

	sem, err := semantic.NewMarker(semantic.List("o", "x", []int{5, 1, 0}), "")
	require.NoError(t, err)
	mapping, err := sem.Setup(data.MustColumn("marker"), nil)
	require.NoError(t, err)

	p := NewPoint()
	p.Mappings["marker"] = mapping
	p.Features["alpha"] = Constant(.5)
	var r recorder
	require.NoError(t, p.Plot(data, &r))
	require.Len(t, r.markers, 3)

	c0 := mustColor(t, "C0")
	white := mustColor(t, "w")

	filled := r.markers[0]
	assert.Equal(t, semantic.Marker{Symbol: "o"}, filled.m)
	assert.Equal(t, Paint{c0, .5}, filled.face)
	assert.Equal(t, Paint{white, 1}, filled.edge)
	assert.Equal(t, 5.0, filled.size)
	assert.Equal(t, .25, filled.edgeWidth)

	// "x" encloses no area, so its edge takes the face color.
	open := r.markers[1]
	assert.Equal(t, Paint{c0, 0}, open.face)
	assert.Equal(t, Paint{c0, .5}, open.edge)
	assert.Equal(t, 1.0, open.edgeWidth)

	assert.Equal(t, semantic.Poly(5, semantic.Star, 0), r.markers[2].m)
}

func TestPointPlotUnfilled(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1}).
		Add("y", []float64{1}).
		Done()
	p := NewPoint()
	p.Features["fill"] = Constant(false)
	var r recorder
	require.NoError(t, p.Plot(data, &r))
	require.Len(t, r.markers, 1)
	assert.Equal(t, 0.0, r.markers[0].face.Alpha)
	assert.Equal(t, mustColor(t, "C0"), r.markers[0].edge.Color)
}

func TestPointPlotMissingColumn(t *testing.T) {
	data := table.NewBuilder(nil).Add("x", []float64{1}).Done()
	var r recorder
	assert.Error(t, NewPoint().Plot(data, &r))
}

func TestLinePlot(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 1, 2}).
		Add("y", []float64{1, 2, 3, 4}).
		Add("linestyle", []string{"a", "a", "b", "b"}).
		Done()

	sem, err := semantic.NewLineStyle(semantic.ValueSpec{}, "")
	require.NoError(t, err)
	mapping, err := sem.Setup(data.MustColumn("linestyle"), nil)
	require.NoError(t, err)

	l := NewLine()
	l.Mappings["linestyle"] = mapping
	var r recorder
	require.NoError(t, l.Plot(data, &r))
	require.Len(t, r.lines, 2)
	assert.Empty(t, r.markers)

	sort.Slice(r.lines, func(i, j int) bool { return r.lines[i].ys[0] < r.lines[j].ys[0] })
	assert.Equal(t, []float64{1, 2}, r.lines[0].xs)
	assert.Equal(t, []float64{1, 2}, r.lines[0].ys)
	assert.True(t, r.lines[0].dash.Solid())
	assert.Equal(t, []float64{3, 4}, r.lines[1].ys)
	assert.Equal(t, []float64{4, 1.5}, r.lines[1].dash.Pattern)
	for _, line := range r.lines {
		assert.Equal(t, 1.5, line.width)
		assert.Equal(t, Paint{mustColor(t, "C0"), 1}, line.stroke)
	}
}

func TestLinePlotMarkers(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3}).
		Add("y", []float64{1, 2, 3}).
		Add("marker", []string{"s", "s", "s"}).
		Done()
	var r recorder
	require.NoError(t, NewLine().Plot(data, &r))
	require.Len(t, r.lines, 1)
	require.Len(t, r.markers, 3)
	assert.Equal(t, semantic.Marker{Symbol: "s"}, r.markers[0].m)
}

func TestAreaPlot(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3}).
		Add("ymin", []float64{0, 0, 0}).
		Add("ymax", []float64{1, 2, 3}).
		Done()
	var r recorder
	a := NewArea()
	require.NoError(t, a.Plot(data, &r))
	require.Len(t, r.polys, 1)
	assert.Equal(t, []float64{1, 2, 3, 3, 2, 1}, r.polys[0].xs)
	assert.Equal(t, []float64{1, 2, 3, 0, 0, 0}, r.polys[0].ys)
	assert.Equal(t, Paint{mustColor(t, "C0"), 1}, r.polys[0].fill)

	a.Orient = "y"
	r = recorder{}
	assert.Error(t, a.Plot(data, &r))

	a.Orient = "z"
	assert.Error(t, a.Plot(data, &r))
}

func TestAreaPlotOrientY(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("y", []float64{1, 2}).
		Add("xmin", []float64{0, 1}).
		Add("xmax", []float64{5, 6}).
		Add("color", []string{"a", "b"}).
		Done()
	sem, err := semantic.NewColor(semantic.List("red", "blue"), "")
	require.NoError(t, err)
	mapping, err := sem.Setup(data.MustColumn("color"), nil)
	require.NoError(t, err)

	a := NewArea()
	a.Orient = "y"
	a.Mappings["color"] = mapping
	var r recorder
	require.NoError(t, a.Plot(data, &r))
	require.Len(t, r.polys, 2)
	colors := map[colorful.Color]polyCall{}
	for _, p := range r.polys {
		colors[p.fill.Color] = p
	}
	red := colors[mustColor(t, "red")]
	assert.Equal(t, []float64{5, 0}, red.xs)
	assert.Equal(t, []float64{1, 1}, red.ys)
}
