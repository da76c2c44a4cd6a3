// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/rules"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
)

// Continuous is a Semantic for numeric channels. It maps numeric data
// linearly onto an output range, and categorical data onto evenly
// spaced points of that range or onto explicit values.
type Continuous struct {
	base
	values ValueSpec
}

// newContinuous builds a Continuous. If values is KindNone, the
// default range is computed by defaultRange from the configured
// parameters.
func newContinuous(values ValueSpec, variable string, defaultRange func(o options) (lo, hi float64), opts []Option) (*Continuous, error) {
	c := &Continuous{base: base{variable: variable, opts: newOptions(opts)}}
	switch values.Kind() {
	case KindNone:
		values = Range(defaultRange(c.opts))
	case KindRange, KindList, KindDict, KindColumn, KindIdentity:
	default:
		return nil, c.wrongType("continuous", values)
	}
	sv, err := values.standardize(standardizeFloat)
	if err != nil {
		return nil, errors.Wrapf(err, "%s values", c.variable)
	}
	c.values = sv
	return c, nil
}

func fixedRange(lo, hi float64) func(options) (float64, float64) {
	return func(options) (float64, float64) { return lo, hi }
}

// NewContinuous returns a Semantic with a default range of [0, 1].
func NewContinuous(values ValueSpec, variable string, opts ...Option) (*Continuous, error) {
	return newContinuous(values, variable, fixedRange(0, 1), opts)
}

// NewArea returns a Semantic for mark area, with a default range of
// [0, 1].
func NewArea(values ValueSpec, variable string, opts ...Option) (*Continuous, error) {
	if variable == "" {
		variable = "area"
	}
	return newContinuous(values, variable, fixedRange(0, 1), opts)
}

// NewWidth returns a Semantic for bar width, as a fraction of the
// space between positions. The default range is [0.2, 0.8].
func NewWidth(values ValueSpec, variable string, opts ...Option) (*Continuous, error) {
	if variable == "" {
		variable = "width"
	}
	return newContinuous(values, variable, fixedRange(.2, .8), opts)
}

// NewAlpha returns a Semantic for opacity, with a default range of
// [0.3, 1].
func NewAlpha(values ValueSpec, variable string, opts ...Option) (*Continuous, error) {
	if variable == "" {
		variable = "alpha"
	}
	return newContinuous(values, variable, fixedRange(.3, 1), opts)
}

// NewLineWidth returns a Semantic for line width. The default range is
// half to twice the configured lines.linewidth.
func NewLineWidth(values ValueSpec, variable string, opts ...Option) (*Continuous, error) {
	if variable == "" {
		variable = "linewidth"
	}
	return newContinuous(values, variable, func(o options) (float64, float64) {
		base := o.params.Lines.LineWidth
		return base * .5, base * 2
	}, opts)
}

// NewEdgeWidth returns a Semantic for the width of patch edges. The
// default range is half to twice the configured patch.linewidth.
func NewEdgeWidth(values ValueSpec, variable string, opts ...Option) (*Continuous, error) {
	if variable == "" {
		variable = "edgewidth"
	}
	return newContinuous(values, variable, func(o options) (float64, float64) {
		base := o.params.Patch.LineWidth
		return base * .5, base * 2
	}, opts)
}

func standardizeFloat(v interface{}) (interface{}, error) {
	f, ok := rules.Float(v)
	if !ok {
		return nil, errors.Mark(errors.Newf("%v (%T) is not a number", v, v), ErrWrongType)
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	return f, nil
}

func (c *Continuous) Standardize(v interface{}) (interface{}, error) {
	return standardizeOne(standardizeFloat, v)
}

// Range returns the output range of c, if it has one.
func (c *Continuous) Range() (lo, hi float64, ok bool) {
	if c.values.Kind() != KindRange {
		return 0, 0, false
	}
	lo, hi = c.values.Bounds()
	return lo, hi, true
}

func (c *Continuous) inferMapType(scale scales.Scale, data table.Slice) rules.VarType {
	if scale.TypeDeclared() {
		return scale.ScaleType()
	}
	switch c.values.Kind() {
	case KindList, KindDict, KindColumn:
		return rules.Categorical
	}
	return rules.VariableType(data, rules.Categorical)
}

func (c *Continuous) Setup(data table.Slice, scale scales.Scale) (Mapping, error) {
	if c.values.Kind() == KindIdentity {
		return NewIdentityMapping(standardizeFloat), nil
	}
	sc, err := c.setupScale(data, scale)
	if err != nil {
		return nil, err
	}

	if c.inferMapType(sc, data) == rules.Categorical {
		levels := rules.CategoricalOrder(data, sc.Order())
		switch c.values.Kind() {
		case KindRange:
			// Levels are spaced from the top of the range down.
			t := RangeTransform{}
			t.Lo, t.Hi = c.values.Bounds()
			values := make([]interface{}, len(levels))
			for i := range levels {
				x := 1.0
				if len(levels) > 1 {
					x = 1 - float64(i)/float64(len(levels)-1)
				}
				values[i] = t.At(x)
			}
			return zipLookup(levels, values), nil

		case KindDict:
			if err := c.checkDictNotMissingLevels(levels, c.values.dict); err != nil {
				return nil, err
			}
			return NewLookupMapping(c.values.dict), nil

		case KindList:
			values, err := c.ensureListNotTooShort(levels, c.values.list)
			if err != nil {
				return nil, err
			}
			return zipLookup(levels, values), nil

		case KindColumn:
			return c.columnLookup(data, c.values.list)
		}
	}

	if c.values.Kind() != KindRange {
		return nil, c.wrongType("continuous", c.values)
	}
	t := RangeTransform{}
	t.Lo, t.Hi = c.values.Bounds()
	return NewNormedMapping(sc, t), nil
}
