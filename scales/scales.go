// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales provides the scales that semantics consult to order
// and normalize data.
//
// A scale is either declared, in which case its type decides whether a
// column is mapped categorically or continuously, or automatic, in
// which case that decision is inferred from the data.
package scales

import (
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-semmap/rules"
	"github.com/cockroachdb/errors"
)

// A Scale realizes the order and normalization of one data column.
type Scale interface {
	// Setup returns a copy of the scale trained on data.
	Setup(data table.Slice) (Scale, error)

	// Order returns the explicit level order of a categorical
	// scale, or nil if there is none.
	Order() []interface{}

	// TypeDeclared reports whether the user chose this scale's
	// type, rather than leaving it to be inferred.
	TypeDeclared() bool

	// ScaleType is the type of data this scale maps.
	ScaleType() rules.VarType

	// Normalize maps data to normalized positions, nominally in
	// [0, 1]. Missing values normalize to NaN.
	Normalize(data table.Slice) ([]float64, error)
}

// floats converts data to float64s, mapping times to seconds since
// the Unix epoch.
func floats(data table.Slice) ([]float64, error) {
	switch data := data.(type) {
	case []time.Time:
		out := make([]float64, len(data))
		for i, t := range data {
			out[i] = float64(t.UnixNano()) / 1e9
		}
		return out, nil
	case []interface{}:
		for _, x := range data {
			if _, ok := x.(time.Time); ok {
				out := make([]float64, len(data))
				for i, x := range data {
					t, ok := x.(time.Time)
					if !ok {
						out[i] = math.NaN()
						continue
					}
					out[i] = float64(t.UnixNano()) / 1e9
				}
				return out, nil
			}
		}
	}
	return rules.Float64s(data)
}

// Linear is a continuous scale that maps its domain linearly onto
// [0, 1]. Unless pinned with SetMin or SetMax, the domain is the range
// of the data given to Setup.
type Linear struct {
	declared bool
	min, max float64
	typ      rules.VarType
	ls       scale.Linear
	trained  bool
}

// NewLinear returns a declared continuous scale.
func NewLinear() *Linear {
	return &Linear{declared: true, min: math.NaN(), max: math.NaN(), typ: rules.Numeric}
}

func (s *Linear) String() string {
	return fmt.Sprintf("linear [%g,%g]", s.ls.Min, s.ls.Max)
}

// SetMin pins the lower bound of the domain.
func (s *Linear) SetMin(v float64) *Linear {
	s.min = v
	return s
}

// SetMax pins the upper bound of the domain.
func (s *Linear) SetMax(v float64) *Linear {
	s.max = v
	return s
}

func (s *Linear) Setup(data table.Slice) (Scale, error) {
	xs, err := floats(data)
	if err != nil {
		return nil, errors.Wrap(err, "linear scale")
	}
	dataMin, dataMax := math.NaN(), math.NaN()
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < dataMin || math.IsNaN(dataMin) {
			dataMin = x
		}
		if x > dataMax || math.IsNaN(dataMax) {
			dataMax = x
		}
	}

	ns := *s
	ls := scale.Linear{Min: s.min, Max: s.max}
	if math.IsNaN(ls.Min) {
		ls.Min = dataMin
	}
	if math.IsNaN(ls.Max) {
		ls.Max = dataMax
	}
	if math.IsNaN(ls.Min) || math.IsNaN(ls.Max) {
		// Only possible if the data has no finite values.
		ls.Min, ls.Max = 0, 1
	}
	if ls.Min > ls.Max {
		ls.Min, ls.Max = ls.Max, ls.Min
	}
	ns.ls, ns.trained = ls, true
	return &ns, nil
}

func (s *Linear) Order() []interface{}     { return nil }
func (s *Linear) TypeDeclared() bool       { return s.declared }
func (s *Linear) ScaleType() rules.VarType { return s.typ }

func (s *Linear) Normalize(data table.Slice) ([]float64, error) {
	if !s.trained {
		return nil, errors.New("linear scale normalized before setup")
	}
	xs, err := floats(data)
	if err != nil {
		return nil, errors.Wrap(err, "linear scale")
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case math.IsNaN(x):
			out[i] = x
		case s.ls.Min == s.ls.Max:
			out[i] = 0.5
		default:
			out[i] = s.ls.Map(x)
		}
	}
	return out, nil
}

// Nominal is a categorical scale. Levels normalize to evenly spaced
// positions on [0, 1] in level order.
type Nominal struct {
	declared bool
	order    []interface{}
	levels   []interface{}
	index    map[interface{}]int
}

// NewNominal returns a declared categorical scale. If order is
// non-empty, it fixes the order of the levels.
func NewNominal(order ...interface{}) *Nominal {
	s := &Nominal{declared: true}
	if len(order) > 0 {
		s.order = append([]interface{}(nil), order...)
	}
	return s
}

func (s *Nominal) Setup(data table.Slice) (Scale, error) {
	ns := *s
	ns.levels = rules.CategoricalOrder(data, s.order)
	ns.index = make(map[interface{}]int, len(ns.levels))
	for i, l := range ns.levels {
		ns.index[rules.LevelKey(l)] = i
	}
	return &ns, nil
}

func (s *Nominal) Order() []interface{}     { return s.order }
func (s *Nominal) TypeDeclared() bool       { return s.declared }
func (s *Nominal) ScaleType() rules.VarType { return rules.Categorical }

func (s *Nominal) Normalize(data table.Slice) ([]float64, error) {
	if s.index == nil {
		return nil, errors.New("nominal scale normalized before setup")
	}
	vs := rules.Values(data)
	out := make([]float64, len(vs))
	for i, v := range vs {
		j, ok := s.index[rules.LevelKey(v)]
		switch {
		case !ok:
			out[i] = math.NaN()
		case len(s.levels) == 1:
			out[i] = 0
		default:
			out[i] = float64(j) / float64(len(s.levels)-1)
		}
	}
	return out, nil
}

// Auto is a scale whose type is inferred from the data it is set up
// with: numeric and datetime data get a Linear scale, anything else a
// Nominal one. Neither is declared.
type Auto struct{}

// NewAuto returns an undeclared scale.
func NewAuto() Auto {
	return Auto{}
}

func (Auto) Setup(data table.Slice) (Scale, error) {
	switch typ := rules.VariableType(data, rules.Numeric); typ {
	case rules.Numeric, rules.Datetime:
		s := NewLinear()
		s.declared, s.typ = false, typ
		return s.Setup(data)
	}
	s := NewNominal()
	s.declared = false
	return s.Setup(data)
}

func (Auto) Order() []interface{}     { return nil }
func (Auto) TypeDeclared() bool       { return false }
func (Auto) ScaleType() rules.VarType { return rules.Numeric }

func (Auto) Normalize(data table.Slice) ([]float64, error) {
	return nil, errors.New("automatic scale normalized before setup")
}
