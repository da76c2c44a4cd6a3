// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"math"

	"github.com/aclements/go-semmap/rules"
	"github.com/cockroachdb/errors"
)

// PolygonStyle is the way a regular polygon marker is drawn.
type PolygonStyle int

const (
	// Polygon is a filled regular polygon.
	Polygon PolygonStyle = iota
	// Star is a filled star with one point per side.
	Star
	// Asterisk is one unfilled spoke per side.
	Asterisk
)

// A Marker is a point shape. It is either a named symbol or a regular
// polygon with Sides vertices, rotated by Angle degrees, drawn in
// Style. Markers are comparable.
type Marker struct {
	Symbol string
	Sides  int
	Style  PolygonStyle
	Angle  float64
}

// Poly returns a regular polygon marker.
func Poly(sides int, style PolygonStyle, angle float64) Marker {
	return Marker{Sides: sides, Style: style, Angle: math.Mod(angle, 360)}
}

func (m Marker) String() string {
	if m.Symbol != "" {
		return m.Symbol
	}
	return fmt.Sprintf("(%d, %d, %g)", m.Sides, m.Style, m.Angle)
}

// symbols is the set of named markers. The value reports whether the
// marker encloses an area.
var symbols = map[string]bool{
	"o": true, "s": true, "D": true, "d": true, "^": true, "v": true,
	"<": true, ">": true, "p": true, "h": true, "H": true, "8": true,
	"*": true, "X": true, "P": true, ".": true, ",": true,
	"+": false, "x": false, "|": false, "_": false,
	"1": false, "2": false, "3": false, "4": false,
}

// Filled reports whether m encloses an area that can be filled.
func (m Marker) Filled() bool {
	if m.Symbol != "" {
		return symbols[m.Symbol]
	}
	return m.Style != Asterisk
}

// Point is a vertex of a marker outline.
type Point struct {
	X, Y float64
}

// Paths returns the outline of m at unit radius, with Y up. If m is
// filled, each path is a closed polygon. Otherwise each path is an open
// polyline.
func (m Marker) Paths() [][]Point {
	if m.Symbol == "" {
		return polyPaths(m.Sides, m.Style, m.Angle)
	}
	switch m.Symbol {
	case "o":
		return polyPaths(32, Polygon, 0)
	case ".":
		return scalePaths(polyPaths(16, Polygon, 0), .5, .5)
	case ",":
		return scalePaths(polyPaths(4, Polygon, 45), .1, .1)
	case "s":
		return scalePaths(polyPaths(4, Polygon, 45), math.Sqrt2/2, math.Sqrt2/2)
	case "D":
		return polyPaths(4, Polygon, 0)
	case "d":
		return scalePaths(polyPaths(4, Polygon, 0), .6, 1)
	case "^":
		return polyPaths(3, Polygon, 0)
	case "<":
		return polyPaths(3, Polygon, 90)
	case "v":
		return polyPaths(3, Polygon, 180)
	case ">":
		return polyPaths(3, Polygon, 270)
	case "p":
		return polyPaths(5, Polygon, 0)
	case "h":
		return polyPaths(6, Polygon, 0)
	case "H":
		return polyPaths(6, Polygon, 30)
	case "8":
		return polyPaths(8, Polygon, 22.5)
	case "*":
		return polyPaths(5, Star, 0)
	case "X":
		return crossPath(45)
	case "P":
		return crossPath(0)
	case "+":
		return polyPaths(4, Asterisk, 0)
	case "x":
		return polyPaths(4, Asterisk, 45)
	case "|":
		return [][]Point{{{0, -1}, {0, 1}}}
	case "_":
		return [][]Point{{{-1, 0}, {1, 0}}}
	case "1":
		return polyPaths(3, Asterisk, 180)
	case "2":
		return polyPaths(3, Asterisk, 0)
	case "3":
		return polyPaths(3, Asterisk, 90)
	case "4":
		return polyPaths(3, Asterisk, 270)
	}
	return nil
}

// vertex returns the point at radius r and angle deg, measured
// counterclockwise from straight up.
func vertex(r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{-r * math.Sin(rad), r * math.Cos(rad)}
}

func polyPaths(sides int, style PolygonStyle, angle float64) [][]Point {
	if sides < 1 {
		return nil
	}
	step := 360 / float64(sides)
	switch style {
	case Star:
		const inner = 0.381966
		path := make([]Point, 0, 2*sides)
		for i := 0; i < sides; i++ {
			a := angle + float64(i)*step
			path = append(path, vertex(1, a), vertex(inner, a+step/2))
		}
		return [][]Point{path}
	case Asterisk:
		paths := make([][]Point, sides)
		for i := range paths {
			paths[i] = []Point{{0, 0}, vertex(1, angle+float64(i)*step)}
		}
		return paths
	}
	path := make([]Point, sides)
	for i := range path {
		path[i] = vertex(1, angle+float64(i)*step)
	}
	return [][]Point{path}
}

// crossPath returns a filled plus sign rotated by angle degrees.
func crossPath(angle float64) [][]Point {
	const w = 1.0 / 3
	tip := math.Sqrt(1 - w*w)
	arm := []Point{{w, tip}, {-w, tip}, {-w, w}}
	path := make([]Point, 0, 12)
	for q := 0; q < 4; q++ {
		rad := (angle + float64(q)*90) * math.Pi / 180
		sin, cos := math.Sin(rad), math.Cos(rad)
		for _, p := range arm {
			path = append(path, Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos})
		}
	}
	return [][]Point{path}
}

func scalePaths(paths [][]Point, sx, sy float64) [][]Point {
	for _, path := range paths {
		for i := range path {
			path[i].X *= sx
			path[i].Y *= sy
		}
	}
	return paths
}

// standardizeMarker converts a marker specification to a Marker. The
// specification may be a Marker, a symbol string, or a (sides, style,
// angle) tuple given as a slice or array of numbers, with the angle
// optional.
func standardizeMarker(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case Marker:
		return v, nil
	case string:
		if _, ok := symbols[v]; !ok {
			return nil, errors.Mark(errors.Newf("unrecognized marker %q", v), ErrUnrecognizedSpec)
		}
		return Marker{Symbol: v}, nil
	}

	var tuple []interface{}
	switch v := v.(type) {
	case []interface{}:
		tuple = v
	case []int:
		tuple = rules.Values(v)
	case []float64:
		tuple = rules.Values(v)
	case [3]float64:
		tuple = rules.Values(v[:])
	case [3]int:
		tuple = rules.Values(v[:])
	default:
		return nil, errors.Mark(errors.Newf("cannot interpret %v (%T) as a marker", v, v), ErrUnrecognizedSpec)
	}
	if len(tuple) != 2 && len(tuple) != 3 {
		return nil, errors.Mark(errors.Newf("marker tuple %v needs 2 or 3 elements", tuple), ErrUnrecognizedSpec)
	}
	nums := make([]float64, 3)
	for i, x := range tuple {
		f, ok := rules.Float(x)
		if !ok {
			return nil, errors.Mark(errors.Newf("marker tuple %v has non-numeric element %v", tuple, x), ErrUnrecognizedSpec)
		}
		nums[i] = f
	}
	sides, style := int(nums[0]), PolygonStyle(nums[1])
	if float64(sides) != nums[0] || sides < 1 || float64(style) != nums[1] || style < Polygon || style > Asterisk {
		return nil, errors.Mark(errors.Newf("invalid marker tuple %v", tuple), ErrUnrecognizedSpec)
	}
	return Poly(sides, style, nums[2]), nil
}

// ParseMarker converts a marker specification, as accepted by
// NewMarker, to a Marker.
func ParseMarker(v interface{}) (Marker, error) {
	m, err := standardizeMarker(v)
	if err != nil {
		return Marker{}, err
	}
	return m.(Marker), nil
}

// curatedMarkers are easily told apart from each other.
var curatedMarkers = []Marker{
	{Symbol: "o"},
	{Symbol: "X"},
	Poly(4, Polygon, 45),
	{Symbol: "P"},
	Poly(4, Polygon, 0),
	Poly(4, Star, 0),
	{Symbol: "^"},
	Poly(4, Star, 45),
	{Symbol: "v"},
}

// markerDefaults returns n distinct filled markers. After the curated
// markers, it continues with polygons and stars of increasing order.
func markerDefaults(n int) []interface{} {
	markers := append([]Marker(nil), curatedMarkers...)
	for s := 5; len(markers) < n; s++ {
		a := 360 / float64(s+1) / 2
		markers = append(markers,
			Poly(s+1, Star, a),
			Poly(s+1, Polygon, a),
			Poly(s, Star, 0),
			Poly(s, Polygon, 0),
		)
	}
	out := make([]interface{}, n)
	for i := range out {
		out[i] = markers[i]
	}
	return out
}

// NewMarker returns a Semantic for point shape. Values are standardized
// to Marker.
func NewMarker(values ValueSpec, variable string, opts ...Option) (*Discrete, error) {
	d := newDiscrete(variable, "marker", opts)
	d.standardize = standardizeMarker
	d.defaults = markerDefaults
	return d.init(values)
}
