// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Cubehelix is a sequential colormap with monotonically changing
// luminance, from Green (2011). Map(0) is the Light end and Map(1) the
// Dark end, unless Reverse is set.
type Cubehelix struct {
	Start, Rot, Gamma, Hue float64
	Light, Dark            float64
	Reverse                bool
}

// DefaultCubehelix is the default sequential colormap, "ch:".
var DefaultCubehelix = Cubehelix{Start: 0, Rot: .4, Gamma: 1, Hue: .8, Light: .85, Dark: .15}

func (c Cubehelix) Map(x float64) color.Color {
	if c.Reverse {
		x = 1 - x
	}
	return c.at(c.Light + (c.Dark-c.Light)*x)
}

// Colors returns n colors evenly spaced from the Light to the Dark end
// (inclusive).
func (c Cubehelix) Colors(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		out[i] = c.Map(x).(colorful.Color)
	}
	return out
}

// at evaluates the cubehelix curve at lightness x in [0, 1].
func (c Cubehelix) at(x float64) colorful.Color {
	xg := math.Pow(x, c.Gamma)
	a := c.Hue * xg * (1 - xg) / 2
	phi := 2 * math.Pi * (c.Start/3 + c.Rot*x)
	cos, sin := math.Cos(phi), math.Sin(phi)
	ch := func(p0, p1 float64) float64 {
		v := xg + a*(p0*cos+p1*sin)
		return math.Max(0, math.Min(1, v))
	}
	return colorful.Color{
		R: ch(-0.14861, 1.78277),
		G: ch(-0.29227, -0.90649),
		B: ch(1.97294, 0),
	}
}

// ParseCubehelix parses a cubehelix palette string of the form
// "ch:<args>". Arguments are comma-separated, either positional (in
// the order start, rot, gamma, hue, light, dark) or keyword, using
// s, r, g, h, l and d. A trailing "_r" reverses the palette.
func ParseCubehelix(spec string) (Cubehelix, error) {
	c := DefaultCubehelix
	if !strings.HasPrefix(spec, "ch:") {
		return c, errors.Mark(errors.Newf("%q is not a cubehelix palette", spec), ErrUnknownPalette)
	}
	args := strings.TrimPrefix(spec, "ch:")
	if strings.HasSuffix(args, "_r") {
		c.Reverse = true
		args = strings.TrimSuffix(args, "_r")
	}
	if strings.TrimSpace(args) == "" {
		return c, nil
	}

	fields := []*float64{&c.Start, &c.Rot, &c.Gamma, &c.Hue, &c.Light, &c.Dark}
	keys := map[string]*float64{
		"s": &c.Start, "start": &c.Start,
		"r": &c.Rot, "rot": &c.Rot,
		"g": &c.Gamma, "gamma": &c.Gamma,
		"h": &c.Hue, "hue": &c.Hue,
		"l": &c.Light, "light": &c.Light,
		"d": &c.Dark, "dark": &c.Dark,
	}
	pos := 0
	for _, arg := range strings.Split(args, ",") {
		k, v, isKey := strings.Cut(arg, "=")
		var dst *float64
		if isKey {
			dst = keys[strings.TrimSpace(k)]
			if dst == nil {
				return c, errors.Mark(errors.Newf("unknown cubehelix parameter %q in %q", k, spec), ErrUnknownPalette)
			}
		} else {
			if pos >= len(fields) {
				return c, errors.Mark(errors.Newf("too many cubehelix arguments in %q", spec), ErrUnknownPalette)
			}
			v = k
			dst = fields[pos]
			pos++
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return c, errors.Mark(errors.Wrapf(err, "cubehelix argument in %q", spec), ErrUnknownPalette)
		}
		*dst = f
	}
	return c, nil
}
