// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marks draws data as points, lines and areas, resolving
// each visual property either from a semantic mapping of a data
// column or from a fixed feature value.
//
// Mark data is a *table.Table with positional columns ("x", "y", and
// for areas "xmin", "xmax", "ymin", "ymax") plus one column per
// mapped channel, named after the channel ("color", "marker", ...).
package marks

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/palettes"
	"github.com/aclements/go-semmap/rc"
	"github.com/aclements/go-semmap/rules"
	"github.com/aclements/go-semmap/semantic"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// A Feature is the value a mark uses for a channel that is not
// mapped from data. It is either a constant or the name of a runtime
// configuration parameter.
type Feature struct {
	value interface{}
	rc    string
}

// Constant returns a Feature with value v.
func Constant(v interface{}) Feature {
	return Feature{value: v}
}

// RC returns a Feature that takes the value of the configuration
// parameter key, such as "scatter.marker".
func RC(key string) Feature {
	return Feature{rc: key}
}

// Value returns the value of f under params p.
func (f Feature) Value(p *rc.Params) (interface{}, error) {
	if f.rc == "" {
		return f.value, nil
	}
	if p == nil {
		p = rc.Default()
	}
	v, ok := p.Lookup(f.rc)
	if !ok {
		return nil, errors.Newf("unknown configuration parameter %q", f.rc)
	}
	return v, nil
}

// Paint is a color with opacity. An Alpha of 0 paints nothing.
type Paint struct {
	Color colorful.Color
	Alpha float64
}

// A Renderer draws resolved marks. Coordinates are in data space;
// sizes and widths are in points.
type Renderer interface {
	// Marker draws m centered at (x, y), size points across.
	Marker(x, y float64, m semantic.Marker, size float64, face, edge Paint, edgeWidth float64)

	// Polyline draws a line through the points (xs[i], ys[i]).
	Polyline(xs, ys []float64, stroke Paint, width float64, dash semantic.Dash)

	// Polygon fills the closed polygon through (xs[i], ys[i]).
	Polygon(xs, ys []float64, fill Paint)
}

// Mark holds what all marks share: the semantic mapping of each
// channel set from data, and the feature value of each channel.
type Mark struct {
	// Mappings maps channel names to the mapping that resolves
	// that channel's data column.
	Mappings map[string]semantic.Mapping

	// Features maps channel names to the value used when the
	// channel isn't in the data.
	Features map[string]Feature

	// Params supplies configuration features. If nil, the
	// defaults are used.
	Params *rc.Params
}

// A standardizer converts one resolved value to the form a mark draws
// with.
type standardizer func(v interface{}) (interface{}, error)

// Resolve returns the value of channel name for each row of data. If
// data has a column for the channel, it is passed through the
// channel's mapping, if any. Otherwise the channel's feature is
// broadcast to every row. Either way, each non-missing value is
// passed through standardize.
func (m *Mark) Resolve(name string, data *table.Table, standardize func(interface{}) (interface{}, error)) ([]interface{}, error) {
	var vals []interface{}
	if col := data.Column(name); col != nil {
		if mapping, ok := m.Mappings[name]; ok {
			var err error
			vals, err = mapping.MapSlice(col)
			if err != nil {
				return nil, errors.Wrapf(err, "mapping %s", name)
			}
		} else {
			vals = append([]interface{}(nil), rules.Values(col)...)
		}
	} else {
		v, err := m.feature(name)
		if err != nil {
			return nil, err
		}
		vals = make([]interface{}, data.Len())
		for i := range vals {
			vals[i] = v
		}
	}

	for i, v := range vals {
		if rules.IsMissing(v) {
			vals[i] = nil
			continue
		}
		sv, err := standardize(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", name)
		}
		vals[i] = sv
	}
	return vals, nil
}

// resolveKey returns the value of channel name for the group whose
// channel level is key. If ok is false, the group has no level for
// the channel and the feature is used.
func (m *Mark) resolveKey(name string, key interface{}, ok bool, standardize standardizer) (interface{}, error) {
	var v interface{}
	if mapping, mapped := m.Mappings[name]; ok && mapped {
		var err error
		if v, err = mapping.Map(key); err != nil {
			return nil, errors.Wrapf(err, "mapping %s", name)
		}
	} else if ok {
		v = key
	} else {
		var err error
		if v, err = m.feature(name); err != nil {
			return nil, err
		}
	}
	if rules.IsMissing(v) {
		return nil, nil
	}
	sv, err := standardize(v)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	return sv, nil
}

func (m *Mark) feature(name string) (interface{}, error) {
	f, ok := m.Features[name]
	if !ok {
		return nil, errors.Newf("no value for %s", name)
	}
	return f.Value(m.Params)
}

func (m *Mark) toColor(v interface{}) (interface{}, error) {
	c, err := palettes.ToRGB(v, m.Params)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func toFloat(v interface{}) (interface{}, error) {
	f, ok := rules.Float(v)
	if !ok {
		return nil, errors.Newf("%v (%T) is not a number", v, v)
	}
	return f, nil
}

func toMarker(v interface{}) (interface{}, error) {
	mk, err := semantic.ParseMarker(v)
	if err != nil {
		return nil, err
	}
	return mk, nil
}

func toBool(v interface{}) (interface{}, error) {
	b, ok, err := semantic.ParseBool(v)
	if err != nil || !ok {
		return nil, err
	}
	return b, nil
}

func (m *Mark) toDash(v interface{}) (interface{}, error) {
	d, err := semantic.DashPattern(v, m.Params)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// positions returns the named positional column of data as floats.
func positions(data *table.Table, name string) ([]float64, error) {
	col := data.Column(name)
	if col == nil {
		return nil, errors.Newf("mark data has no %q column", name)
	}
	xs, err := rules.Float64s(col)
	if err != nil {
		return nil, errors.Wrapf(err, "column %q", name)
	}
	return xs, nil
}

// groupKeys returns the value of each column in cols in the first row
// of t. All rows of a group share them.
func groupKeys(t *table.Table, cols []string) map[string]interface{} {
	keys := make(map[string]interface{}, len(cols))
	for _, col := range cols {
		vals := rules.Values(t.Column(col))
		if len(vals) > 0 {
			keys[col] = vals[0]
		}
	}
	return keys
}

// groupBy groups data by whichever of cols it has. It returns the
// grouping and the columns used.
func groupBy(data *table.Table, cols []string) (table.Grouping, []string) {
	var present []string
	for _, col := range cols {
		if data.Column(col) != nil {
			present = append(present, col)
		}
	}
	if len(present) == 0 {
		return data, nil
	}
	return table.GroupBy(data, present...), present
}
