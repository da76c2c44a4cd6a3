// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"math"
	"math/rand"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/semantic"
	"github.com/lucasb-eyer/go-colorful"
)

// Point draws a marker at each (x, y) row.
type Point struct {
	Mark

	// JitterX and JitterY are the half-widths of the uniform
	// noise Adjust adds to x and y. Zero disables jitter on that
	// axis.
	JitterX, JitterY float64
}

// NewPoint returns a Point with the default features.
func NewPoint() *Point {
	return &Point{Mark: Mark{
		Mappings: map[string]semantic.Mapping{},
		Features: map[string]Feature{
			"color":     Constant("C0"),
			"edgecolor": Constant("w"),
			"alpha":     Constant(1),
			"marker":    RC("scatter.marker"),
			"pointsize": Constant(5),
			"linewidth": Constant(1),
			"edgewidth": Constant(.25),
			"fill":      Constant(true),
		},
	}}
}

// Adjust returns data with jitter added to its x and y columns,
// drawing from rng. data is not modified. If p has no jitter, Adjust
// returns data itself.
func (p *Point) Adjust(data *table.Table, rng *rand.Rand) (*table.Table, error) {
	if p.JitterX == 0 && p.JitterY == 0 {
		return data, nil
	}
	b := table.NewBuilder(data)
	for _, axis := range []struct {
		col    string
		amount float64
	}{{"x", p.JitterX}, {"y", p.JitterY}} {
		if axis.amount == 0 {
			continue
		}
		vals, err := positions(data, axis.col)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = v + (2*rng.Float64()-1)*axis.amount
		}
		b.Add(axis.col, out)
	}
	return b.Done(), nil
}

// Plot draws one marker per row of data.
//
// The face color takes the alpha channel. Markers that are unfilled,
// either because fill is false or because the shape encloses no area,
// draw their edge in the face color at the line width and leave the
// face empty.
func (p *Point) Plot(data *table.Table, r Renderer) error {
	xs, err := positions(data, "x")
	if err != nil {
		return err
	}
	ys, err := positions(data, "y")
	if err != nil {
		return err
	}
	color, err := p.Resolve("color", data, p.toColor)
	if err != nil {
		return err
	}
	edgecolor, err := p.Resolve("edgecolor", data, p.toColor)
	if err != nil {
		return err
	}
	alpha, err := p.Resolve("alpha", data, toFloat)
	if err != nil {
		return err
	}
	marker, err := p.Resolve("marker", data, toMarker)
	if err != nil {
		return err
	}
	fill, err := p.Resolve("fill", data, toBool)
	if err != nil {
		return err
	}
	size, err := p.Resolve("pointsize", data, toFloat)
	if err != nil {
		return err
	}
	edgewidth, err := p.Resolve("edgewidth", data, toFloat)
	if err != nil {
		return err
	}
	linewidth, err := p.Resolve("linewidth", data, toFloat)
	if err != nil {
		return err
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) || color[i] == nil || marker[i] == nil || size[i] == nil {
			continue
		}
		mk := marker[i].(semantic.Marker)
		face := Paint{Color: color[i].(colorful.Color), Alpha: 1}
		if alpha[i] != nil {
			face.Alpha = alpha[i].(float64)
		}
		edge := Paint{Alpha: 1}
		if edgecolor[i] != nil {
			edge.Color = edgecolor[i].(colorful.Color)
		}
		filled := mk.Filled()
		if fill[i] != nil {
			filled = filled && fill[i].(bool)
		}
		ew := 0.0
		if edgewidth[i] != nil {
			ew = edgewidth[i].(float64)
		}
		if !filled {
			edge = face
			face.Alpha = 0
			ew = 0
			if linewidth[i] != nil {
				ew = linewidth[i].(float64)
			}
		}
		r.Marker(xs[i], ys[i], mk, size[i].(float64), face, edge, ew)
	}
	return nil
}
