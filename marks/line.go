// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/semantic"
	"github.com/lucasb-eyer/go-colorful"
)

// lineGroups are the channels that split a Line into separate lines.
var lineGroups = []string{"color", "marker", "linestyle", "linewidth"}

// Line connects the (x, y) rows of each group in data order. Rows are
// grouped by their color, marker, linestyle and linewidth levels.
type Line struct {
	Mark
}

// NewLine returns a Line with the default features.
func NewLine() *Line {
	return &Line{Mark{
		Mappings: map[string]semantic.Mapping{},
		Features: map[string]Feature{
			"color":     Constant("C0"),
			"linestyle": Constant("-"),
			"linewidth": RC("lines.linewidth"),
			"pointsize": Constant(5),
		},
	}}
}

// Plot draws one polyline per group of data. If data has a marker
// column, each vertex also gets a marker.
func (l *Line) Plot(data *table.Table, r Renderer) error {
	groups, cols := groupBy(data, lineGroups)
	for _, gid := range groups.Tables() {
		t := groups.Table(gid)
		keys := groupKeys(t, cols)
		key := func(name string) (interface{}, bool) {
			v, ok := keys[name]
			return v, ok
		}

		k, ok := key("color")
		color, err := l.resolveKey("color", k, ok, l.toColor)
		if err != nil {
			return err
		}
		k, ok = key("linestyle")
		dash, err := l.resolveKey("linestyle", k, ok, l.toDash)
		if err != nil {
			return err
		}
		k, ok = key("linewidth")
		width, err := l.resolveKey("linewidth", k, ok, toFloat)
		if err != nil {
			return err
		}
		if color == nil || dash == nil || width == nil {
			// Unmapped level.
			continue
		}

		xs, err := positions(t, "x")
		if err != nil {
			return err
		}
		ys, err := positions(t, "y")
		if err != nil {
			return err
		}
		stroke := Paint{Color: color.(colorful.Color), Alpha: 1}
		r.Polyline(xs, ys, stroke, width.(float64), dash.(semantic.Dash))

		if k, ok := key("marker"); ok {
			mk, err := l.resolveKey("marker", k, ok, toMarker)
			if err != nil {
				return err
			}
			size, err := l.resolveKey("pointsize", nil, false, toFloat)
			if err != nil {
				return err
			}
			if mk == nil {
				continue
			}
			for i := range xs {
				r.Marker(xs[i], ys[i], mk.(semantic.Marker), size.(float64), stroke, stroke, 0)
			}
		}
	}
	return nil
}
