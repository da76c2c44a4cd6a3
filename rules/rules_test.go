// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rules

import (
	"math"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableType(t *testing.T) {
	nan := math.NaN()
	now := time.Now()
	for _, test := range []struct {
		data table.Slice
		want VarType
	}{
		{[]float64{1.5, 2, 3}, Numeric},
		{[]int{3, 1, 2}, Numeric},
		{[]float64{nan, nan}, Numeric},
		{[]string{}, Numeric},
		{[]string{"a", "b"}, Categorical},
		{[]bool{true, false}, "boolean"},
		{[]int{0, 1, 1, 0}, "boolean"},
		{[]float64{0, 1, nan}, "boolean"},
		{[]interface{}{true, false, nil}, "boolean"},
		{[]interface{}{1, 2.5, nil}, Numeric},
		{[]interface{}{1, "a"}, Categorical},
		{[]interface{}{now, now}, Datetime},
		{[]time.Time{now}, Datetime},
		{[]interface{}{nil, nil}, Numeric},
	} {
		assert.Equal(t, test.want, VariableType(test.data, "boolean"), "%#v", test.data)
	}
}

func TestVariableTypeNotSlice(t *testing.T) {
	assert.Panics(t, func() { VariableType(42, Numeric) })
}

func TestCategoricalOrder(t *testing.T) {
	nan := math.NaN()
	for _, test := range []struct {
		data  table.Slice
		order []interface{}
		want  []interface{}
	}{
		// First-seen order for categorical data.
		{[]string{"b", "a", "b", "c"}, nil, []interface{}{"b", "a", "c"}},
		// Explicit order wins.
		{[]string{"b", "a"}, []interface{}{"a", "b", "z"}, []interface{}{"a", "b", "z"}},
		// Numeric data is sorted.
		{[]int{3, 1, 2, 1}, nil, []interface{}{1, 2, 3}},
		{[]float64{2, nan, 1}, nil, []interface{}{1.0, 2.0}},
		{[]interface{}{2, nil, 1.5}, nil, []interface{}{1.5, 2}},
		// Equal numbers of different kinds are one level.
		{[]interface{}{1, 1.0, 2, int64(2)}, nil, []interface{}{1, 2}},
		{[]interface{}{"a", 1.0, 1, "a"}, nil, []interface{}{"a", 1.0}},
		// Booleans are numeric-like: false before true.
		{[]bool{true, false, true}, nil, []interface{}{false, true}},
		// Missing values are dropped.
		{[]interface{}{"x", nil, "y"}, nil, []interface{}{"x", "y"}},
		{nil, nil, []interface{}{}},
	} {
		assert.Equal(t, test.want, CategoricalOrder(test.data, test.order), "%#v", test.data)
	}
}

func TestCategoricalOrderDoesNotMutate(t *testing.T) {
	data := []int{3, 1, 2}
	CategoricalOrder(data, nil)
	assert.Equal(t, []int{3, 1, 2}, data)
}

func TestFloat64s(t *testing.T) {
	got, err := Float64s([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got, err = Float64s([]interface{}{1, nil, true, float32(2.5)})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 1.0, got[2])
	assert.Equal(t, 2.5, got[3])

	_, err = Float64s([]string{"a"})
	assert.Error(t, err)
}

func TestLevelKey(t *testing.T) {
	assert.Equal(t, LevelKey(1), LevelKey(1.0))
	assert.Equal(t, LevelKey(int64(1)), LevelKey(uint8(1)))
	assert.Equal(t, "a", LevelKey("a"))
	assert.Equal(t, true, LevelKey(true))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(math.NaN()))
	assert.True(t, IsMissing(float32(math.NaN())))
	assert.False(t, IsMissing(0))
	assert.False(t, IsMissing(""))
}
