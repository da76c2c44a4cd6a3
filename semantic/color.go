// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/palettes"
	"github.com/aclements/go-semmap/rules"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a Semantic for color channels. Categorical data maps to a
// discrete palette and numeric data to a colormap. Mapped values are
// colorful.Color.
type Color struct {
	base
	palette ValueSpec
}

// NewColor returns a color Semantic. palette may be KindNone (the
// color cycle or a default colormap), a list or dict of colors, a
// column of colors, a palette name, a colormap, or KindIdentity.
func NewColor(palette ValueSpec, variable string, opts ...Option) (*Color, error) {
	if variable == "" {
		variable = "color"
	}
	c := &Color{base: base{variable: variable, opts: newOptions(opts)}}
	switch palette.Kind() {
	case KindNone, KindList, KindDict, KindColumn, KindName, KindColormap, KindIdentity:
	default:
		return nil, c.wrongType("color", palette)
	}
	sv, err := palette.standardize(c.standardize)
	if err != nil {
		return nil, errors.Wrapf(err, "%s palette", c.variable)
	}
	if sv.Kind() == KindList {
		for i, v := range sv.list {
			if v == nil {
				return nil, errors.Wrapf(missingColor(), "%s palette entry %d", c.variable, i)
			}
		}
	}
	for k, v := range sv.dict {
		if v == nil {
			return nil, errors.Wrapf(missingColor(), "%s palette entry %v", c.variable, k)
		}
	}
	c.palette = sv
	return c, nil
}

func missingColor() error {
	return errors.Mark(errors.New("palette has a missing color"), palettes.ErrBadColor)
}

// asColor returns the color of a standardized palette entry.
func asColor(v interface{}) (colorful.Color, error) {
	col, ok := v.(colorful.Color)
	if !ok {
		return colorful.Color{}, errors.Mark(errors.Newf("palette entry %v (%T) is not a color", v, v), palettes.ErrBadColor)
	}
	return col, nil
}

func (c *Color) standardize(v interface{}) (interface{}, error) {
	rgb, err := palettes.ToRGB(v, c.opts.params)
	if err != nil {
		return nil, err
	}
	return rgb, nil
}

func (c *Color) Standardize(v interface{}) (interface{}, error) {
	return standardizeOne(c.standardize, v)
}

func (c *Color) inferMapType(scale scales.Scale, data table.Slice) rules.VarType {
	if scale.TypeDeclared() {
		return scale.ScaleType()
	}
	switch c.palette.Kind() {
	case KindName:
		if palettes.IsQualitative(c.palette.name) {
			return rules.Categorical
		}
	case KindList, KindDict, KindColumn:
		return rules.Categorical
	}
	return rules.VariableType(data, rules.Categorical)
}

func (c *Color) Setup(data table.Slice, scale scales.Scale) (Mapping, error) {
	if c.palette.Kind() == KindIdentity {
		return NewIdentityMapping(c.standardize), nil
	}
	sc, err := c.setupScale(data, scale)
	if err != nil {
		return nil, err
	}
	if c.inferMapType(sc, data) == rules.Categorical {
		return c.setupCategorical(data, sc.Order())
	}
	return c.setupNumeric(data, sc)
}

func (c *Color) setupCategorical(data table.Slice, order []interface{}) (Mapping, error) {
	levels := rules.CategoricalOrder(data, order)
	n := len(levels)

	var colors []colorful.Color
	switch c.palette.Kind() {
	case KindDict:
		if err := c.checkDictNotMissingLevels(levels, c.palette.dict); err != nil {
			return nil, err
		}
		return NewLookupMapping(c.palette.dict), nil

	case KindList:
		values, err := c.ensureListNotTooShort(levels, c.palette.list)
		if err != nil {
			return nil, err
		}
		return zipLookup(levels, values), nil

	case KindColumn:
		return c.columnLookup(data, c.palette.list)

	case KindNone:
		cycle, err := palettes.ColorCycle(c.opts.params)
		if err != nil {
			return nil, err
		}
		if n <= len(cycle) {
			colors = palettes.Cycle(cycle, n)
		} else {
			colors, err = palettes.ColorPalette("husl", n, c.opts.params)
			if err != nil {
				return nil, err
			}
		}

	case KindName:
		var err error
		colors, err = palettes.ColorPalette(c.palette.name, n, c.opts.params)
		if err != nil {
			return nil, errors.Wrapf(err, "%s palette", c.variable)
		}

	case KindColormap:
		colors = palettes.Sample(c.palette.cmap, n)

	default:
		return nil, c.wrongType("categorical color", c.palette)
	}

	values := make([]interface{}, n)
	for i, col := range colors {
		values[i] = col
	}
	return zipLookup(levels, values), nil
}

func (c *Color) setupNumeric(data table.Slice, sc scales.Scale) (Mapping, error) {
	var cmap palette.Continuous
	switch c.palette.Kind() {
	case KindDict:
		return c.setupLegacyDict(sc)

	case KindColumn:
		return c.columnLookup(data, c.palette.list)

	case KindNone:
		cmap = palettes.DefaultCubehelix

	case KindName:
		var err error
		cmap, err = palettes.AsColormap(c.palette.name)
		if err != nil {
			return nil, errors.Wrapf(err, "%s palette", c.variable)
		}

	case KindList:
		colors := make([]colorful.Color, len(c.palette.list))
		for i, v := range c.palette.list {
			col, err := asColor(v)
			if err != nil {
				return nil, err
			}
			colors[i] = col
		}
		cmap = palettes.Gradient(colors)

	case KindColormap:
		cmap = c.palette.cmap

	default:
		return nil, c.wrongType("numeric color", c.palette)
	}
	return NewNormedMapping(sc, RGBTransform{cmap}), nil
}

// setupLegacyDict maps the keys of a dict palette to their colors, and
// any other number through a listed colormap of the dict's colors in
// key order.
//
// Deprecated: this only exists to link color orders across plots.
// Declare a categorical scale instead.
func (c *Color) setupLegacyDict(sc scales.Scale) (Mapping, error) {
	keys := make([]interface{}, 0, len(c.palette.dict))
	for k := range c.palette.dict {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		fi, iok := rules.Float(keys[i])
		fj, jok := rules.Float(keys[j])
		if iok && jok {
			return fi < fj
		}
		if iok != jok {
			return iok
		}
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	listed := make(palettes.Listed, len(keys))
	for i, k := range keys {
		col, err := asColor(c.palette.dict[k])
		if err != nil {
			return nil, err
		}
		listed[i] = col
	}

	m := NewLookupMapping(c.palette.dict)
	m.fallback = NewNormedMapping(sc, RGBTransform{listed})
	return m, nil
}
