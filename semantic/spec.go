// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/rules"
)

// SpecKind is the form of a ValueSpec.
type SpecKind int

const (
	// KindNone asks the channel for its defaults.
	KindNone SpecKind = iota
	// KindList gives values to assign to levels in order.
	KindList
	// KindDict gives the value of each level.
	KindDict
	// KindRange gives a continuous output range.
	KindRange
	// KindColumn gives one already-chosen value per data row.
	KindColumn
	// KindName names a palette.
	KindName
	// KindColormap gives a continuous palette.
	KindColormap
	// KindIdentity says the data already holds visual values.
	KindIdentity
)

var kindNames = []string{"none", "list", "dict", "range", "column", "name", "colormap", "identity"}

func (k SpecKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("SpecKind(%d)", int(k))
}

// A ValueSpec is the user's specification of the values of a channel.
// The zero ValueSpec is KindNone.
//
// ValueSpecs are immutable; the constructors copy their arguments.
type ValueSpec struct {
	kind   SpecKind
	list   []interface{}
	dict   map[interface{}]interface{}
	lo, hi float64
	name   string
	cmap   palette.Continuous
}

// List returns a spec assigning vs to levels in order.
func List(vs ...interface{}) ValueSpec {
	return ValueSpec{kind: KindList, list: append([]interface{}{}, vs...)}
}

// Dict returns a spec giving the value for each level.
func Dict(m map[interface{}]interface{}) ValueSpec {
	d := make(map[interface{}]interface{}, len(m))
	for k, v := range m {
		d[k] = v
	}
	return ValueSpec{kind: KindDict, dict: d}
}

// Range returns a spec mapping data onto the interval [lo, hi].
func Range(lo, hi float64) ValueSpec {
	return ValueSpec{kind: KindRange, lo: lo, hi: hi}
}

// Column returns a spec giving the value for each row of the data.
func Column(vs table.Slice) ValueSpec {
	return ValueSpec{kind: KindColumn, list: append([]interface{}{}, rules.Values(vs)...)}
}

// Named returns a spec naming a palette.
func Named(name string) ValueSpec {
	return ValueSpec{kind: KindName, name: name}
}

// Colormap returns a spec mapping through a continuous palette.
func Colormap(c palette.Continuous) ValueSpec {
	return ValueSpec{kind: KindColormap, cmap: c}
}

// Identity returns a spec for data that already holds final values.
func Identity() ValueSpec {
	return ValueSpec{kind: KindIdentity}
}

func (s ValueSpec) Kind() SpecKind {
	return s.kind
}

// Bounds returns the output range of a KindRange spec.
func (s ValueSpec) Bounds() (lo, hi float64) {
	return s.lo, s.hi
}

func (s ValueSpec) String() string {
	switch s.kind {
	case KindRange:
		return fmt.Sprintf("range(%g, %g)", s.lo, s.hi)
	case KindName:
		return fmt.Sprintf("name(%q)", s.name)
	case KindList, KindColumn:
		return fmt.Sprintf("%s%v", s.kind, s.list)
	case KindDict:
		return fmt.Sprintf("dict%v", s.dict)
	}
	return s.kind.String()
}

// standardize returns a copy of s with every value passed through f.
// Lists, dicts and columns are standardized elementwise; other kinds
// are returned as is.
func (s ValueSpec) standardize(f func(interface{}) (interface{}, error)) (ValueSpec, error) {
	switch s.kind {
	case KindList, KindColumn:
		ns := s
		ns.list = make([]interface{}, len(s.list))
		for i, v := range s.list {
			sv, err := standardizeOne(f, v)
			if err != nil {
				return s, err
			}
			ns.list[i] = sv
		}
		return ns, nil
	case KindDict:
		ns := s
		ns.dict = make(map[interface{}]interface{}, len(s.dict))
		for k, v := range s.dict {
			sv, err := standardizeOne(f, v)
			if err != nil {
				return s, err
			}
			ns.dict[k] = sv
		}
		return ns, nil
	}
	return s, nil
}

// standardizeOne applies f to v, passing nil through unchanged.
func standardizeOne(f func(interface{}) (interface{}, error), v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return f(v)
}
