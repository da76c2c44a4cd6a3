// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes resolves palette specifications to colors.
//
// A discrete palette is a list of exactly n colors (ColorPalette). A
// continuous palette, or colormap, is a palette.Continuous mapping
// [0, 1] to colors (AsColormap). Names follow the usual conventions:
// the classic palettes ("deep", "muted", ...), "husl" and "hls" hue
// circles, ColorBrewer names ("Set1", "Blues", ...), "viridis", and
// cubehelix strings ("ch:s=.5,r=-.5"). Any name may carry an "_r"
// suffix to reverse it.
package palettes

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
	"github.com/aclements/go-semmap/rc"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownPalette marks errors from palette names that cannot be
// resolved.
var ErrUnknownPalette = errors.New("unknown palette")

var namedPalettes = map[string][]string{
	"deep":       {"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3", "#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD"},
	"muted":      {"#4878D0", "#EE854A", "#6ACC64", "#D65F5F", "#956CB4", "#8C613C", "#DC7EC0", "#797979", "#D5BB67", "#82C6E2"},
	"pastel":     {"#A1C9F4", "#FFB482", "#8DE5A1", "#FF9F9B", "#D0BBFF", "#DEBB9B", "#FAB0E4", "#CFCFCF", "#FFFEA3", "#B9F2F0"},
	"bright":     {"#023EFF", "#FF7C00", "#1AC938", "#E8000B", "#8B2BE2", "#9F4800", "#F14CC1", "#A3A3A3", "#FFC400", "#00D7FF"},
	"dark":       {"#001C7F", "#B1400D", "#12711C", "#8C0800", "#591E71", "#592F0D", "#A23582", "#3C3C3C", "#B8850A", "#006374"},
	"colorblind": {"#0173B2", "#DE8F05", "#029E73", "#D55E00", "#CC78BC", "#CA9161", "#FBAFE4", "#949494", "#ECE133", "#56B4E9"},
	"tab10":      {"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"},
}

var brewerQualitative = map[string]bool{
	"Accent": true, "Dark2": true, "Paired": true, "Pastel1": true,
	"Pastel2": true, "Set1": true, "Set2": true, "Set3": true,
}

// IsQualitative reports whether name is a qualitative palette, whose
// colors have no inherent order.
func IsQualitative(name string) bool {
	name = strings.TrimSuffix(name, "_r")
	if _, ok := namedPalettes[name]; ok {
		return true
	}
	return brewerQualitative[name]
}

// ColorCycle returns the ambient color cycle of p, or of the default
// parameters if p is nil.
func ColorCycle(p *rc.Params) ([]colorful.Color, error) {
	if p == nil {
		p = rc.Default()
	}
	if len(p.Axes.PropCycle) == 0 {
		return nil, errors.Mark(errors.New("axes.prop_cycle: empty color cycle"), ErrBadColor)
	}
	out := make([]colorful.Color, len(p.Axes.PropCycle))
	for i, s := range p.Axes.PropCycle {
		// Cycle entries can't refer to the cycle.
		c, err := ToRGB(s, rc.Default())
		if err != nil {
			return nil, errors.Wrap(err, "axes.prop_cycle")
		}
		out[i] = c
	}
	return out, nil
}

// Cycle returns the first n colors of colors repeated round-robin.
func Cycle(colors []colorful.Color, n int) []colorful.Color {
	out := make([]colorful.Color, n)
	if len(colors) == 0 {
		return out[:0]
	}
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}

// ColorPalette returns exactly n colors from the named palette. An
// empty name means the ambient color cycle of p.
func ColorPalette(name string, n int, p *rc.Params) ([]colorful.Color, error) {
	if n < 0 {
		return nil, errors.Newf("negative palette size %d", n)
	}
	if name == "" {
		cycle, err := ColorCycle(p)
		if err != nil {
			return nil, err
		}
		return Cycle(cycle, n), nil
	}

	base, reverse := strings.TrimSuffix(name, "_r"), strings.HasSuffix(name, "_r")
	if strings.HasPrefix(name, "ch:") {
		// The cubehelix parser handles its own "_r".
		base, reverse = name, false
	}
	colors, err := namedPalette(base, n)
	if err != nil {
		return nil, err
	}
	if reverse {
		for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
			colors[i], colors[j] = colors[j], colors[i]
		}
	}
	return colors, nil
}

func namedPalette(name string, n int) ([]colorful.Color, error) {
	if hexes, ok := namedPalettes[name]; ok {
		cs := make([]colorful.Color, len(hexes))
		for i, h := range hexes {
			cs[i], _ = colorful.Hex(strings.ToLower(h))
		}
		return Cycle(cs, n), nil
	}

	switch {
	case name == "husl":
		return HUSL(n, .01, .9, .65), nil
	case name == "hls":
		return HLS(n, .01, .6, .65), nil
	case strings.HasPrefix(name, "ch:"):
		ch, err := ParseCubehelix(name)
		if err != nil {
			return nil, err
		}
		return ch.Colors(n), nil
	case brewerQualitative[name]:
		cs, ok := brewerColors(name)
		if !ok {
			break
		}
		return Cycle(cs, n), nil
	}

	// Anything else must be a colormap.
	cmap, err := AsColormap(name)
	if err != nil {
		return nil, err
	}
	return Sample(cmap, n), nil
}

// Sample returns n colors from cmap at evenly spaced interior points,
// so neither extreme of the colormap is used.
func Sample(cmap palette.Continuous, n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = FromColor(cmap.Map(float64(i+1) / float64(n+1)))
	}
	return out
}

// brewerColors returns the largest variant of the named ColorBrewer
// palette.
func brewerColors(name string) ([]colorful.Color, bool) {
	variants, ok := brewer.ByName[name]
	if !ok {
		return nil, false
	}
	sizes := make([]int, 0, len(variants))
	for k := range variants {
		sizes = append(sizes, k)
	}
	sort.Ints(sizes)
	cs := variants[sizes[len(sizes)-1]]
	out := make([]colorful.Color, len(cs))
	for i, c := range cs {
		out[i] = FromColor(c)
	}
	return out, true
}

// HUSL returns n colors evenly spaced around the HSLuv hue circle,
// starting at hue h. All parameters are in [0, 1].
func HUSL(n int, h, s, l float64) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		hue := math.Mod(float64(i)/float64(n)+h, 1) * 359
		out[i] = colorful.HSLuv(hue, s*.99, l*.99).Clamped()
	}
	return out
}

// HLS returns n colors evenly spaced around the HLS hue circle,
// starting at hue h. All parameters are in [0, 1].
func HLS(n int, h, l, s float64) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		hue := math.Mod(float64(i)/float64(n)+h, 1) * 360
		out[i] = colorful.Hsl(hue, s, l).Clamped()
	}
	return out
}

// AsColormap resolves name to a continuous palette.
func AsColormap(name string) (palette.Continuous, error) {
	if strings.HasPrefix(name, "ch:") {
		return ParseCubehelix(name)
	}
	if strings.HasSuffix(name, "_r") {
		c, err := AsColormap(strings.TrimSuffix(name, "_r"))
		if err != nil {
			return nil, err
		}
		return Reversed{c}, nil
	}
	switch {
	case name == "viridis":
		return palette.Viridis, nil
	case IsQualitative(name), name == "husl", name == "hls":
		return nil, errors.Mark(errors.Newf("palette %q is qualitative and cannot be used as a colormap", name), ErrUnknownPalette)
	}
	if cs, ok := brewerColors(name); ok {
		return Gradient(cs), nil
	}
	return nil, errors.Mark(errors.Newf("%q is not a known palette", name), ErrUnknownPalette)
}

// Gradient returns a continuous palette that blends between colors.
func Gradient(colors []colorful.Color) palette.Continuous {
	g := palette.RGBGradient{Colors: make([]color.RGBA, len(colors))}
	for i, c := range colors {
		g.Colors[i] = rgba8(c)
	}
	return g
}

// Reversed is a continuous palette running backwards.
type Reversed struct {
	palette.Continuous
}

func (r Reversed) Map(x float64) color.Color {
	return r.Continuous.Map(1 - x)
}

// Listed is a colormap that divides [0, 1] into len(Listed) equal bins
// and maps each bin to one color, without blending.
type Listed []colorful.Color

func (l Listed) Map(x float64) color.Color {
	i := int(x * float64(len(l)))
	if i < 0 || math.IsNaN(x) {
		i = 0
	} else if i >= len(l) {
		i = len(l) - 1
	}
	return l[i]
}
