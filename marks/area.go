// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/semantic"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Area fills the band between two curves for each color group.
type Area struct {
	Mark

	// Orient is "x" to fill between ymin and ymax along x, or "y"
	// to fill between xmin and xmax along y.
	Orient string
}

// NewArea returns an Area oriented along x with the default features.
func NewArea() *Area {
	return &Area{
		Mark: Mark{
			Mappings: map[string]semantic.Mapping{},
			Features: map[string]Feature{
				"color": Constant("C0"),
				"alpha": Constant(1),
			},
		},
		Orient: "x",
	}
}

// Plot draws one filled polygon per color group of data.
func (a *Area) Plot(data *table.Table, r Renderer) error {
	var along, lo, hi string
	switch a.Orient {
	case "x", "":
		along, lo, hi = "x", "ymin", "ymax"
	case "y":
		along, lo, hi = "y", "xmin", "xmax"
	default:
		return errors.Newf("area orient must be \"x\" or \"y\", got %q", a.Orient)
	}

	groups, cols := groupBy(data, []string{"color"})
	for _, gid := range groups.Tables() {
		t := groups.Table(gid)
		keys := groupKeys(t, cols)
		k, ok := keys["color"]
		color, err := a.resolveKey("color", k, ok, a.toColor)
		if err != nil {
			return err
		}
		alpha, err := a.resolveKey("alpha", nil, false, toFloat)
		if err != nil {
			return err
		}
		if color == nil || alpha == nil {
			continue
		}

		pos, err := positions(t, along)
		if err != nil {
			return err
		}
		los, err := positions(t, lo)
		if err != nil {
			return err
		}
		his, err := positions(t, hi)
		if err != nil {
			return err
		}

		// Out along the upper edge and back along the lower.
		n := len(pos)
		ps := make([]float64, 0, 2*n)
		vs := make([]float64, 0, 2*n)
		for i := 0; i < n; i++ {
			ps, vs = append(ps, pos[i]), append(vs, his[i])
		}
		for i := n - 1; i >= 0; i-- {
			ps, vs = append(ps, pos[i]), append(vs, los[i])
		}
		fill := Paint{Color: color.(colorful.Color), Alpha: alpha.(float64)}
		if along == "x" {
			r.Polygon(ps, vs, fill)
		} else {
			r.Polygon(vs, ps, fill)
		}
	}
	return nil
}
