// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rules infers how a column of data should be treated when it
// is mapped to a visual property: its variable type and, for
// categorical data, the order of its levels.
//
// Columns are Go slices of any element type (table.Slice). Missing
// values are nil interface elements and floating-point NaNs.
package rules

import (
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"
)

// VarType is the kind of a variable as far as mapping is concerned.
type VarType string

const (
	Categorical VarType = "categorical"
	Numeric     VarType = "numeric"
	Datetime    VarType = "datetime"
)

var timeType = reflect.TypeOf(time.Time{})

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// sliceValue returns data as a reflect.Value of slice kind. It panics
// if data is not a slice.
func sliceValue(data table.Slice) reflect.Value {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		panic(&generic.TypeError{Type1: reflect.TypeOf(data), Type2: nil, Extra: "is not a slice"})
	}
	return rv
}

// IsMissing reports whether x is a missing value.
func IsMissing(x interface{}) bool {
	switch x := x.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// Values returns the elements of data as a []interface{}. A nil data
// yields nil.
func Values(data table.Slice) []interface{} {
	if data == nil {
		return nil
	}
	if vs, ok := data.([]interface{}); ok {
		return vs
	}
	rv := sliceValue(data)
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Float reports the numeric value of x, if x has a numeric kind.
func Float(x interface{}) (float64, bool) {
	if f, ok := x.(float64); ok {
		return f, true
	}
	rv := reflect.ValueOf(x)
	if !rv.IsValid() || !isNumericKind(rv.Kind()) {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return float64(rv.Int()), true
}

// LevelKey returns the canonical lookup key for level x. Numbers of
// any kind compare by value, so 1, int64(1) and 1.0 share a key.
func LevelKey(x interface{}) interface{} {
	if f, ok := Float(x); ok {
		return f
	}
	return x
}

// Float64s converts a numeric column to []float64. Missing values
// become NaN and booleans become 0 or 1. It fails if data has a
// non-numeric element.
func Float64s(data table.Slice) ([]float64, error) {
	rv := sliceValue(data)
	if isNumericKind(rv.Type().Elem().Kind()) {
		var out []float64
		slice.Convert(&out, data)
		return out, nil
	}
	out := make([]float64, rv.Len())
	for i := range out {
		x := rv.Index(i).Interface()
		switch x := x.(type) {
		case nil:
			out[i] = math.NaN()
			continue
		case bool:
			if x {
				out[i] = 1
			}
			continue
		}
		f, ok := Float(x)
		if !ok {
			return nil, errors.Newf("value %v (%T) at index %d is not numeric", x, x, i)
		}
		out[i] = f
	}
	return out, nil
}

// VariableType infers the type of data. Data consisting only of
// booleans or the numbers 0 and 1 is reported as booleanType; the
// caller decides whether that means categorical or numeric. Empty and
// all-missing data is numeric.
func VariableType(data table.Slice, booleanType VarType) VarType {
	rv := sliceValue(data)
	et := rv.Type().Elem()
	switch {
	case et.Kind() == reflect.Bool:
		if rv.Len() == 0 {
			return Numeric
		}
		return booleanType
	case et == timeType:
		return Datetime
	case et.Kind() == reflect.String:
		if rv.Len() == 0 {
			return Numeric
		}
		return Categorical
	}

	var present, binary, numeric, times int
	for i := 0; i < rv.Len(); i++ {
		x := rv.Index(i).Interface()
		if IsMissing(x) {
			continue
		}
		present++
		if _, ok := x.(bool); ok {
			binary++
			continue
		}
		if _, ok := x.(time.Time); ok {
			times++
			continue
		}
		if f, ok := Float(x); ok {
			numeric++
			if f == 0 || f == 1 {
				binary++
			}
		}
	}
	switch {
	case present == 0:
		return Numeric
	case binary == present:
		return booleanType
	case numeric == present:
		return Numeric
	case times == present:
		return Datetime
	}
	return Categorical
}

// CategoricalOrder returns the distinct levels of data. If order is
// non-nil, it is returned as is. Otherwise the levels are the
// non-missing values of data in order of first appearance, sorted if
// data is numeric. Values with the same LevelKey are one level, and
// the first one seen represents it.
func CategoricalOrder(data table.Slice, order []interface{}) []interface{} {
	if order != nil {
		return append([]interface{}(nil), order...)
	}
	if data == nil {
		return []interface{}{}
	}

	// Nub compares with ==, so 1 and 1.0 in an interface column are
	// still distinct here. Levels are keyed by LevelKey elsewhere.
	nub := slice.Nub(data)
	levels := []interface{}{}
	seen := make(map[interface{}]bool)
	for _, x := range Values(nub) {
		if IsMissing(x) {
			continue
		}
		k := LevelKey(x)
		if seen[k] {
			continue
		}
		seen[k] = true
		levels = append(levels, x)
	}
	if VariableType(data, Numeric) != Numeric {
		return levels
	}

	if len(levels) == reflect.ValueOf(nub).Len() && isNumericKind(reflect.TypeOf(nub).Elem().Kind()) {
		// Nothing was dropped, so sort a copy of the typed
		// slice directly.
		nv := reflect.ValueOf(nub)
		cp := reflect.MakeSlice(nv.Type(), nv.Len(), nv.Len())
		reflect.Copy(cp, nv)
		slice.Sort(cp.Interface())
		return Values(cp.Interface())
	}
	sort.SliceStable(levels, func(i, j int) bool {
		return orderValue(levels[i]) < orderValue(levels[j])
	})
	return levels
}

// orderValue is the sort key of a level of numeric data. Booleans
// order false before true.
func orderValue(x interface{}) float64 {
	if b, ok := x.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	f, _ := Float(x)
	return f
}
