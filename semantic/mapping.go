// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/rules"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
)

// A Mapping resolves data values to visual values. It is the product
// of Semantic.Setup for one particular data column.
type Mapping interface {
	// Map resolves a single data value.
	Map(x interface{}) (interface{}, error)

	// MapSlice resolves every element of a column.
	MapSlice(xs table.Slice) ([]interface{}, error)
}

// IdentityMapping passes values through a standardization function.
type IdentityMapping struct {
	standardize func(interface{}) (interface{}, error)
}

// NewIdentityMapping returns a mapping that applies f to each value.
func NewIdentityMapping(f func(interface{}) (interface{}, error)) *IdentityMapping {
	return &IdentityMapping{f}
}

func (m *IdentityMapping) Map(x interface{}) (interface{}, error) {
	return standardizeOne(m.standardize, x)
}

func (m *IdentityMapping) MapSlice(xs table.Slice) ([]interface{}, error) {
	vs := rules.Values(xs)
	out := make([]interface{}, len(vs))
	for i, x := range vs {
		y, err := m.Map(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// LookupMapping maps each level seen at setup to its value.
//
// Levels are compared with rules.LevelKey, so numeric levels match
// regardless of their Go type.
type LookupMapping struct {
	table    map[interface{}]interface{}
	fallback Mapping
}

// NewLookupMapping returns a mapping over a copy of table.
func NewLookupMapping(table map[interface{}]interface{}) *LookupMapping {
	m := &LookupMapping{table: make(map[interface{}]interface{}, len(table))}
	for k, v := range table {
		m.table[rules.LevelKey(k)] = v
	}
	return m
}

// zipLookup pairs levels with values in order.
func zipLookup(levels, values []interface{}) *LookupMapping {
	m := &LookupMapping{table: make(map[interface{}]interface{}, len(levels))}
	for i, l := range levels {
		m.table[rules.LevelKey(l)] = values[i]
	}
	return m
}

// Len returns the number of levels in m.
func (m *LookupMapping) Len() int {
	return len(m.table)
}

// Table returns a copy of the level to value table.
func (m *LookupMapping) Table() map[interface{}]interface{} {
	t := make(map[interface{}]interface{}, len(m.table))
	for k, v := range m.table {
		t[k] = v
	}
	return t
}

func (m *LookupMapping) lookup(x interface{}) (interface{}, bool) {
	if x != nil && !reflect.TypeOf(x).Comparable() {
		return nil, false
	}
	v, ok := m.table[rules.LevelKey(x)]
	return v, ok
}

// Map returns the value of level x. If x was not seen at setup, Map
// fails with ErrUnseenLevel, unless m has a fallback mapping.
func (m *LookupMapping) Map(x interface{}) (interface{}, error) {
	if v, ok := m.lookup(x); ok {
		return v, nil
	}
	if m.fallback != nil {
		return m.fallback.Map(x)
	}
	return nil, errors.Mark(errors.Newf("%v (%T) is not a level of this mapping", x, x), ErrUnseenLevel)
}

// MapSlice maps each element of xs. Elements that were not seen at
// setup map to nil, unless m has a fallback mapping.
func (m *LookupMapping) MapSlice(xs table.Slice) ([]interface{}, error) {
	vs := rules.Values(xs)
	out := make([]interface{}, len(vs))
	for i, x := range vs {
		v, ok := m.lookup(x)
		if !ok && m.fallback != nil {
			var err error
			if v, err = m.fallback.Map(x); err != nil {
				return nil, err
			}
		}
		out[i] = v
	}
	return out, nil
}

// NormedMapping normalizes values through a scale and then applies a
// transform.
type NormedMapping struct {
	scale     scales.Scale
	transform Transform
}

// NewNormedMapping returns a mapping through scale, which must already
// be set up, and t.
func NewNormedMapping(scale scales.Scale, t Transform) *NormedMapping {
	return &NormedMapping{scale, t}
}

func (m *NormedMapping) Map(x interface{}) (interface{}, error) {
	normed, err := m.scale.Normalize([]interface{}{x})
	if err != nil {
		return nil, err
	}
	return m.transform.Apply(normed[0]), nil
}

func (m *NormedMapping) MapSlice(xs table.Slice) ([]interface{}, error) {
	normed, err := m.scale.Normalize(xs)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(normed))
	for i, x := range normed {
		out[i] = m.transform.Apply(x)
	}
	return out, nil
}
