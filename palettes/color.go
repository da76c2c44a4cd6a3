// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-semmap/rc"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrBadColor marks errors from colors that cannot be understood.
var ErrBadColor = errors.New("invalid color")

// baseColors are the single-letter color names.
var baseColors = map[string]colorful.Color{
	"b": {R: 0, G: 0, B: 1},
	"g": {R: 0, G: 0.5, B: 0},
	"r": {R: 1, G: 0, B: 0},
	"c": {R: 0, G: 0.75, B: 0.75},
	"m": {R: 0.75, G: 0, B: 0.75},
	"y": {R: 0.75, G: 0.75, B: 0},
	"k": {R: 0, G: 0, B: 0},
	"w": {R: 1, G: 1, B: 1},
}

// FromColor converts c to an RGB triple, dropping alpha. A fully
// transparent color is black.
func FromColor(c color.Color) colorful.Color {
	if cc, ok := c.(colorful.Color); ok {
		return cc
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}
	}
	return cc
}

// ToRGB standardizes a color specification to an RGB triple.
//
// v may be a colorful.Color or any other color.Color, a [3]float64 or
// []float64 of RGB components in [0, 1], or a string. Strings may be
// hex codes ("#4c72b0", "#abc", "#4c72b0ff"), SVG color names
// ("steelblue"), single-letter names ("k"), gray levels ("0.5"), or
// references into the color cycle of p ("C0", "C1", ...). p may be
// nil, in which case the default parameters are used.
func ToRGB(v interface{}, p *rc.Params) (colorful.Color, error) {
	switch v := v.(type) {
	case colorful.Color:
		return v, nil
	case color.Color:
		return FromColor(v), nil
	case [3]float64:
		return fromComponents(v[:])
	case []float64:
		return fromComponents(v)
	case string:
		return parseColor(v, p)
	}
	return colorful.Color{}, errors.Mark(errors.Newf("cannot interpret %v (%T) as a color", v, v), ErrBadColor)
}

func fromComponents(v []float64) (colorful.Color, error) {
	if len(v) != 3 && len(v) != 4 {
		return colorful.Color{}, errors.Mark(errors.Newf("color needs 3 or 4 components, got %d", len(v)), ErrBadColor)
	}
	for _, x := range v {
		if x < 0 || x > 1 {
			return colorful.Color{}, errors.Mark(errors.Newf("color component %g out of range [0, 1]", x), ErrBadColor)
		}
	}
	return colorful.Color{R: v[0], G: v[1], B: v[2]}, nil
}

func parseColor(s string, p *rc.Params) (colorful.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := baseColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		hex := name
		switch len(hex) {
		case 4:
			hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
		case 9:
			hex = hex[:7]
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, errors.Mark(errors.Wrapf(err, "color %q", s), ErrBadColor)
		}
		return c, nil
	}
	if len(name) >= 2 && name[0] == 'c' {
		if i, err := strconv.Atoi(name[1:]); err == nil && i >= 0 {
			cycle, err := ColorCycle(p)
			if err != nil {
				return colorful.Color{}, err
			}
			return cycle[i%len(cycle)], nil
		}
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	if g, err := strconv.ParseFloat(name, 64); err == nil && g >= 0 && g <= 1 {
		return colorful.Color{R: g, G: g, B: g}, nil
	}
	return colorful.Color{}, errors.Mark(errors.Newf("unknown color %q", s), ErrBadColor)
}

// ToRGBs standardizes each color in vs.
func ToRGBs(vs []interface{}, p *rc.Params) ([]colorful.Color, error) {
	out := make([]colorful.Color, len(vs))
	for i, v := range vs {
		c, err := ToRGB(v, p)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// rgba8 converts c to an opaque 8-bit sRGB color.
func rgba8(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}
