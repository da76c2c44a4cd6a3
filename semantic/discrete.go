// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/rules"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Discrete is a Semantic that always maps data categorically, by
// looking each level up in a table.
type Discrete struct {
	base
	values      ValueSpec
	standardize func(interface{}) (interface{}, error)
	defaults    func(n int) []interface{}
}

func identity(v interface{}) (interface{}, error) {
	return v, nil
}

func newDiscrete(variable, defaultVariable string, opts []Option) *Discrete {
	if variable == "" {
		variable = defaultVariable
	}
	return &Discrete{
		base:        base{variable: variable, opts: newOptions(opts)},
		standardize: identity,
	}
}

// init standardizes and records the value spec. It must be called
// after d.standardize is final.
func (d *Discrete) init(values ValueSpec) (*Discrete, error) {
	switch values.Kind() {
	case KindNone, KindList, KindDict, KindColumn, KindIdentity:
	default:
		return nil, d.wrongType("discrete", values)
	}
	sv, err := values.standardize(d.standardize)
	if err != nil {
		return nil, errors.Wrapf(err, "%s values", d.variable)
	}
	d.values = sv
	return d, nil
}

// NewDiscrete returns a generic categorical Semantic. Values are used
// as given. It has no defaults, so values must not be KindNone unless
// the channel is never set up.
func NewDiscrete(values ValueSpec, variable string, opts ...Option) (*Discrete, error) {
	return newDiscrete(variable, "value", opts).init(values)
}

// NewBoolean returns a Semantic for a two-valued channel such as
// fill. Values are standardized to bool; missing values stay nil.
func NewBoolean(values ValueSpec, variable string, opts ...Option) (*Discrete, error) {
	d := newDiscrete(variable, "value", opts)
	d.standardize = standardizeBool
	d.defaults = d.booleanDefaults
	return d.init(values)
}

// ParseBool converts v to a bool. Numbers are true if non-zero and
// strings are parsed by strconv.ParseBool. Missing values, nil and NaN,
// report ok == false.
func ParseBool(v interface{}) (b, ok bool, err error) {
	sv, err := standardizeBool(v)
	if err != nil || sv == nil {
		return false, false, err
	}
	return sv.(bool), true, nil
}

func standardizeBool(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Mark(errors.Newf("cannot interpret %q as a boolean", v), ErrWrongType)
		}
		return b, nil
	}
	if f, ok := rules.Float(v); ok {
		if math.IsNaN(f) {
			return nil, nil
		}
		return f != 0, nil
	}
	return nil, errors.Mark(errors.Newf("Type of values (%T) not understood.", v), ErrWrongType)
}

func (d *Discrete) booleanDefaults(n int) []interface{} {
	if n > 2 {
		d.warn("There are only two possible "+d.variable+" values, so they will cycle and may produce an uninterpretable plot",
			zap.Int("needed", n))
	}
	out := make([]interface{}, n)
	for i := range out {
		out[i] = i%2 == 0
	}
	return out
}

// hatchPatterns are the basic hatch glyphs, starting with no hatching.
var hatchPatterns = []string{"", "/", "\\", "x", ".", "o", "-", "|", "+", "*", "O"}

// NewHatch returns a Semantic for fill hatching. Values are hatch
// pattern strings.
func NewHatch(values ValueSpec, variable string, opts ...Option) (*Discrete, error) {
	d := newDiscrete(variable, "hatch", opts)
	d.standardize = standardizeHatch
	d.defaults = hatchDefaults
	return d.init(values)
}

func standardizeHatch(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.Mark(errors.Newf("hatch must be a string, got %T", v), ErrUnrecognizedSpec)
	}
	for _, r := range s {
		if !strings.ContainsRune(`/\|-+xoO.*`, r) {
			return nil, errors.Mark(errors.Newf("unrecognized hatch %q", s), ErrUnrecognizedSpec)
		}
	}
	return s, nil
}

// hatchDefaults returns n distinct hatch patterns: the basic glyphs,
// then each glyph at increasing density.
func hatchDefaults(n int) []interface{} {
	out := make([]interface{}, 0, n)
	for _, p := range hatchPatterns {
		out = append(out, p)
	}
	for k := 2; len(out) < n; k++ {
		for _, p := range hatchPatterns[1:] {
			out = append(out, strings.Repeat(p, k))
		}
	}
	return out[:n]
}

func (d *Discrete) Standardize(v interface{}) (interface{}, error) {
	return standardizeOne(d.standardize, v)
}

// Setup returns a LookupMapping from each level of data to its value,
// or an IdentityMapping if d's values are KindIdentity.
func (d *Discrete) Setup(data table.Slice, scale scales.Scale) (Mapping, error) {
	if d.values.Kind() == KindIdentity {
		return NewIdentityMapping(d.standardize), nil
	}
	sc, err := d.setupScale(data, scale)
	if err != nil {
		return nil, err
	}
	levels := rules.CategoricalOrder(data, sc.Order())

	switch d.values.Kind() {
	case KindNone:
		if d.defaults == nil {
			return nil, errors.Mark(errors.Newf("no %s values given and there are no defaults", d.variable), ErrNoDefaults)
		}
		return zipLookup(levels, d.defaults(len(levels))), nil

	case KindDict:
		if err := d.checkDictNotMissingLevels(levels, d.values.dict); err != nil {
			return nil, err
		}
		return NewLookupMapping(d.values.dict), nil

	case KindList:
		values, err := d.ensureListNotTooShort(levels, d.values.list)
		if err != nil {
			return nil, err
		}
		return zipLookup(levels, values), nil

	case KindColumn:
		return d.columnLookup(data, d.values.list)
	}
	return nil, d.wrongType("discrete", d.values)
}
