// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"math"

	"github.com/aclements/go-semmap/rc"
	"github.com/aclements/go-semmap/rules"
	"github.com/cockroachdb/errors"
)

// A Dash is a line dash pattern. Pattern alternates the lengths of
// drawn and skipped segments, in units of the line width. A nil
// Pattern is a solid line. Offset is where in the pattern the line
// starts.
type Dash struct {
	Offset  float64
	Pattern []float64
}

// Solid reports whether d is a solid line.
func (d Dash) Solid() bool {
	return d.Pattern == nil
}

func (d Dash) String() string {
	if d.Pattern == nil {
		return fmt.Sprintf("(%g, none)", d.Offset)
	}
	return fmt.Sprintf("(%g, %v)", d.Offset, d.Pattern)
}

var shortStyles = map[string]string{"-": "solid", "--": "dashed", "-.": "dashdot", ":": "dotted"}

// DashPattern converts a line style to a Dash.
//
// style may be a style name ("-", "--", "-.", ":" or "solid",
// "dashed", "dashdot", "dotted", "none"), a Dash, a bare []float64
// pattern with zero offset, or a two-element []interface{} of an
// offset and a []float64 pattern (or nil). Named dash patterns come
// from p, or the defaults if p is nil. The offset is reduced into
// [0, sum(pattern)).
func DashPattern(style interface{}, p *rc.Params) (Dash, error) {
	if p == nil {
		p = rc.Default()
	}
	var d Dash
	switch s := style.(type) {
	case string:
		if long, ok := shortStyles[s]; ok {
			s = long
		}
		switch s {
		case "solid", "none", "None":
		case "dashed":
			d.Pattern = append([]float64{}, p.Lines.DashedPattern...)
		case "dashdot":
			d.Pattern = append([]float64{}, p.Lines.DashDotPattern...)
		case "dotted":
			d.Pattern = append([]float64{}, p.Lines.DottedPattern...)
		default:
			return Dash{}, errors.Mark(errors.Newf("Unrecognized linestyle: %q", style), ErrUnrecognizedSpec)
		}

	case Dash:
		d.Offset = s.Offset
		if s.Pattern != nil {
			d.Pattern = append([]float64{}, s.Pattern...)
		}

	case []float64:
		d.Pattern = append([]float64{}, s...)

	case []interface{}:
		if len(s) == 2 {
			if off, ok := rules.Float(s[0]); ok {
				switch pat := s[1].(type) {
				case nil:
					d.Offset = off
					return d, nil
				case []float64:
					d.Offset, d.Pattern = off, append([]float64{}, pat...)
					return normalizeDash(d), nil
				case []interface{}:
					d.Offset, d.Pattern = off, make([]float64, len(pat))
					for i, x := range pat {
						f, ok := rules.Float(x)
						if !ok {
							return Dash{}, errors.Mark(errors.Newf("Unrecognized linestyle: %v", style), ErrUnrecognizedSpec)
						}
						d.Pattern[i] = f
					}
					return normalizeDash(d), nil
				}
			}
		}
		d.Pattern = make([]float64, len(s))
		for i, x := range s {
			f, ok := rules.Float(x)
			if !ok {
				return Dash{}, errors.Mark(errors.Newf("Unrecognized linestyle: %v", style), ErrUnrecognizedSpec)
			}
			d.Pattern[i] = f
		}

	default:
		return Dash{}, errors.Mark(errors.Newf("Unrecognized linestyle: %v (%T)", style, style), ErrUnrecognizedSpec)
	}
	return normalizeDash(d), nil
}

func normalizeDash(d Dash) Dash {
	var sum float64
	for _, x := range d.Pattern {
		sum += x
	}
	if sum != 0 {
		d.Offset = math.Mod(d.Offset, sum)
		if d.Offset < 0 {
			d.Offset += sum
		}
	}
	return d
}

// combinationsWithReplacement returns the length-k multisets of
// {alpha[0], alpha[1]} in lexicographic order: the i'th has k-i copies
// of alpha[0] followed by i copies of alpha[1].
func combinationsWithReplacement(alpha [2]float64, k int) [][]float64 {
	out := make([][]float64, k+1)
	for i := range out {
		c := make([]float64, k)
		for j := range c {
			if j < k-i {
				c[j] = alpha[0]
			} else {
				c[j] = alpha[1]
			}
		}
		out[i] = c
	}
	return out
}

// dashDefaults returns n distinct dash patterns, starting with a solid
// line. Past the curated patterns, it interleaves mixtures of long and
// short dashes of increasing length.
func (d *Discrete) dashDefaults(n int) []interface{} {
	styles := []interface{}{
		"-",
		[]float64{4, 1.5},
		[]float64{1, 1},
		[]float64{3, 1.25, 1.5, 1.25},
		[]float64{5, 1, 1, 1},
	}
	for p := 3; len(styles) < n; p++ {
		a := combinationsWithReplacement([2]float64{3, 1.25}, p)
		b := combinationsWithReplacement([2]float64{4, 1}, p)
		a, b = a[1:len(a)-1], b[1:len(b)-1]
		for i := range a {
			for _, segs := range [][]float64{a[len(a)-1-i], b[i]} {
				gap := math.Inf(1)
				for _, s := range segs {
					gap = math.Min(gap, s)
				}
				spec := make([]float64, 0, 2*len(segs))
				for _, s := range segs {
					spec = append(spec, s, gap)
				}
				styles = append(styles, spec)
			}
		}
	}

	out := make([]interface{}, n)
	for i := range out {
		// The styles above are all well formed.
		dash, _ := DashPattern(styles[i], d.opts.params)
		out[i] = dash
	}
	return out
}

// NewLineStyle returns a Semantic for line dash style. Values are
// standardized to Dash.
func NewLineStyle(values ValueSpec, variable string, opts ...Option) (*Discrete, error) {
	d := newDiscrete(variable, "linestyle", opts)
	d.standardize = func(v interface{}) (interface{}, error) {
		dash, err := DashPattern(v, d.opts.params)
		if err != nil {
			return nil, err
		}
		return dash, nil
	}
	d.defaults = d.dashDefaults
	return d.init(values)
}
