// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-semmap/palettes"
)

// A Transform maps a normalized value, nominally in [0, 1], to an
// output value. NaN, a missing value, maps to nil.
type Transform interface {
	Apply(x float64) interface{}
}

// RangeTransform interpolates linearly from [0, 1] onto [Lo, Hi].
type RangeTransform struct {
	Lo, Hi float64
}

func (t RangeTransform) String() string {
	return fmt.Sprintf("range [%g,%g]", t.Lo, t.Hi)
}

// At returns the output value at x.
func (t RangeTransform) At(x float64) float64 {
	return t.Lo + x*(t.Hi-t.Lo)
}

func (t RangeTransform) Apply(x float64) interface{} {
	if math.IsNaN(x) {
		return nil
	}
	return t.At(x)
}

// RGBTransform looks x up in a colormap and returns the RGB triple
// (a colorful.Color), dropping any alpha.
type RGBTransform struct {
	Cmap palette.Continuous
}

func (t RGBTransform) Apply(x float64) interface{} {
	if math.IsNaN(x) {
		return nil
	}
	return palettes.FromColor(t.Cmap.Map(x))
}
