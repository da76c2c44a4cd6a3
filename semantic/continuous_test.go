// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"math"
	"testing"

	"github.com/aclements/go-semmap/rc"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousRange(t *testing.T) {
	sem, err := NewContinuous(Range(0, 10), "size")
	require.NoError(t, err)
	m, err := sem.Setup([]float64{0, 2, 10}, scales.NewLinear())
	require.NoError(t, err)
	require.IsType(t, &NormedMapping{}, m)

	got, err := m.MapSlice([]float64{0, 5, 10, math.NaN()})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{0.0, 5.0, 10.0, nil}, got)

	x, err := m.Map(5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, x)
}

func TestContinuousInferredNumeric(t *testing.T) {
	sem, err := NewAlpha(ValueSpec{}, "")
	require.NoError(t, err)
	m, err := sem.Setup([]int{2, 4, 6}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]int{2, 6})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, .3, got[0], 1e-12)
	assert.InDelta(t, 1, got[1], 1e-12)
}

func TestContinuousCategoricalRange(t *testing.T) {
	sem, err := NewContinuous(Range(0, 10), "size")
	require.NoError(t, err)
	m, err := sem.Setup([]string{"a", "b", "c", "b"}, nil)
	require.NoError(t, err)
	require.IsType(t, &LookupMapping{}, m)
	// The first level gets the top of the range.
	got, err := m.MapSlice([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{10.0, 5.0, 0.0}, got)

	m, err = sem.Setup([]string{"only"}, nil)
	require.NoError(t, err)
	x, err := m.Map("only")
	require.NoError(t, err)
	assert.Equal(t, 10.0, x)
}

func TestContinuousBooleanIsCategorical(t *testing.T) {
	sem, err := NewContinuous(Range(1, 3), "size")
	require.NoError(t, err)
	m, err := sem.Setup([]bool{true, false}, nil)
	require.NoError(t, err)
	require.IsType(t, &LookupMapping{}, m)
	x, err := m.Map(false)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
}

func TestContinuousCategoricalList(t *testing.T) {
	opt, logs := observe()
	sem, err := NewContinuous(List(1, 2), "size", opt)
	require.NoError(t, err)
	m, err := sem.Setup([]float64{10, 20, 30}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1.0, 2.0, 1.0}, got)
	assert.Equal(t, 1, logs.Len())
}

func TestContinuousCategoricalDict(t *testing.T) {
	sem, err := NewContinuous(Dict(map[interface{}]interface{}{"a": 1, "b": 2}), "size")
	require.NoError(t, err)
	m, err := sem.Setup([]string{"a", "b"}, nil)
	require.NoError(t, err)
	x, err := m.Map("b")
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)

	_, err = sem.Setup([]string{"a", "z"}, nil)
	assert.True(t, errors.Is(err, ErrMissingLevels))
}

func TestContinuousWrongType(t *testing.T) {
	sem, err := NewContinuous(List(1, 2), "size")
	require.NoError(t, err)
	_, err = sem.Setup([]float64{1, 2, 3}, scales.NewLinear())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongType))
	assert.EqualError(t, err, "Using continuous size mapping, but values provided as list.")

	_, err = NewContinuous(Named("viridis"), "size")
	assert.True(t, errors.Is(err, ErrWrongType))

	_, err = NewContinuous(List("big"), "size")
	assert.True(t, errors.Is(err, ErrWrongType))
}

func TestContinuousDeclaredCategorical(t *testing.T) {
	sem, err := NewWidth(ValueSpec{}, "")
	require.NoError(t, err)
	m, err := sem.Setup([]float64{1, 2, 3}, scales.NewNominal())
	require.NoError(t, err)
	got, err := m.MapSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, .8, got[0], 1e-12)
	assert.InDelta(t, .5, got[1], 1e-12)
	assert.InDelta(t, .2, got[2], 1e-12)
}

func TestContinuousDefaultRanges(t *testing.T) {
	params := rc.Default()
	params.Lines.LineWidth = 2
	params.Patch.LineWidth = 4

	for _, test := range []struct {
		new    func(ValueSpec, string, ...Option) (*Continuous, error)
		opts   []Option
		name   string
		lo, hi float64
	}{
		{NewContinuous, nil, "", 0, 1},
		{NewArea, nil, "area", 0, 1},
		{NewWidth, nil, "width", .2, .8},
		{NewAlpha, nil, "alpha", .3, 1},
		{NewLineWidth, nil, "linewidth", .75, 3},
		{NewEdgeWidth, nil, "edgewidth", .5, 2},
		{NewLineWidth, []Option{WithParams(params)}, "linewidth", 1, 4},
		{NewEdgeWidth, []Option{WithParams(params)}, "edgewidth", 2, 8},
	} {
		sem, err := test.new(ValueSpec{}, "", test.opts...)
		require.NoError(t, err)
		assert.Equal(t, test.name, sem.Variable())
		lo, hi, ok := sem.Range()
		require.True(t, ok)
		assert.Equal(t, test.lo, lo, test.name)
		assert.Equal(t, test.hi, hi, test.name)
	}
}

func TestContinuousSetupRepeatable(t *testing.T) {
	sem, err := NewLineWidth(Range(1, 5), "")
	require.NoError(t, err)
	data := []float64{3, 1, 4, 1, 5}
	sc := scales.NewLinear()
	m1, err := sem.Setup(data, sc)
	require.NoError(t, err)
	m2, err := sem.Setup(data, sc)
	require.NoError(t, err)
	probe := []float64{0, 1, 2.5, 5, 7}
	got1, err := m1.MapSlice(probe)
	require.NoError(t, err)
	got2, err := m2.MapSlice(probe)
	require.NoError(t, err)
	assert.Equal(t, got1, got2)
}

func TestContinuousIdentity(t *testing.T) {
	sem, err := NewContinuous(Identity(), "size")
	require.NoError(t, err)
	m, err := sem.Setup([]int{1, 2}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]int{7, 9})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{7.0, 9.0}, got)
}
