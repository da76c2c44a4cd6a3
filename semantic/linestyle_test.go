// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"testing"

	"github.com/aclements/go-semmap/rc"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashPattern(t *testing.T) {
	params := rc.Default()
	for _, test := range []struct {
		in   interface{}
		want Dash
	}{
		{"-", Dash{0, nil}},
		{"solid", Dash{0, nil}},
		{"None", Dash{0, nil}},
		{"--", Dash{0, params.Lines.DashedPattern}},
		{"-.", Dash{0, params.Lines.DashDotPattern}},
		{":", Dash{0, params.Lines.DottedPattern}},
		{"dotted", Dash{0, params.Lines.DottedPattern}},
		{[]float64{3, 1}, Dash{0, []float64{3, 1}}},
		{[]interface{}{2, []float64{3, 1, 3, 1}}, Dash{2, []float64{3, 1, 3, 1}}},
		{[]interface{}{10, []float64{3, 1, 3, 1}}, Dash{2, []float64{3, 1, 3, 1}}},
		{[]interface{}{-1, []float64{3, 1}}, Dash{3, []float64{3, 1}}},
		{[]interface{}{2, []interface{}{3, 1, 3, 1}}, Dash{2, []float64{3, 1, 3, 1}}},
		{[]interface{}{0.5, []interface{}{3, 1.5}}, Dash{0.5, []float64{3, 1.5}}},
		{[]interface{}{5, nil}, Dash{5, nil}},
		{[]interface{}{1, 2, 3}, Dash{0, []float64{1, 2, 3}}},
		{Dash{9, []float64{4, 4}}, Dash{1, []float64{4, 4}}},
	} {
		got, err := DashPattern(test.in, nil)
		require.NoError(t, err, "%v", test.in)
		assert.Equal(t, test.want, got, "%v", test.in)
	}

	for _, bad := range []interface{}{"wavy", 3, []interface{}{"a", "b"}, []interface{}{2, []interface{}{3, "x"}}, nil} {
		_, err := DashPattern(bad, nil)
		assert.True(t, errors.Is(err, ErrUnrecognizedSpec), "%v", bad)
	}
}

func TestDashPatternParams(t *testing.T) {
	params := rc.Default()
	params.Lines.DashedPattern = []float64{2, 2}
	got, err := DashPattern("--", params)
	require.NoError(t, err)
	assert.Equal(t, Dash{0, []float64{2, 2}}, got)

	// The result doesn't alias the parameters.
	got.Pattern[0] = 100
	assert.Equal(t, 2.0, params.Lines.DashedPattern[0])
}

func TestCombinationsWithReplacement(t *testing.T) {
	assert.Equal(t, [][]float64{
		{3, 3, 3},
		{3, 3, 1.25},
		{3, 1.25, 1.25},
		{1.25, 1.25, 1.25},
	}, combinationsWithReplacement([2]float64{3, 1.25}, 3))
}

func TestLineStyleDefaults(t *testing.T) {
	sem, err := NewLineStyle(ValueSpec{}, "")
	require.NoError(t, err)
	assert.Equal(t, "linestyle", sem.Variable())

	got := sem.defaults(9)
	require.Len(t, got, 9)
	assert.Equal(t, Dash{0, nil}, got[0])
	assert.Equal(t, Dash{0, []float64{4, 1.5}}, got[1])
	assert.Equal(t, Dash{0, []float64{5, 1, 1, 1}}, got[4])
	assert.Equal(t, []interface{}{
		Dash{0, []float64{3, 1.25, 1.25, 1.25, 1.25, 1.25}},
		Dash{0, []float64{4, 1, 4, 1, 1, 1}},
		Dash{0, []float64{3, 1.25, 3, 1.25, 1.25, 1.25}},
		Dash{0, []float64{4, 1, 1, 1, 1, 1}},
	}, got[5:])

	got = sem.defaults(30)
	require.Len(t, got, 30)
	seen := map[string]bool{}
	for _, d := range got {
		key := fmt.Sprint(d)
		assert.False(t, seen[key], "duplicate dash %s", key)
		seen[key] = true
	}

	assert.Len(t, sem.defaults(3), 3)
}

func TestLineStyleSetup(t *testing.T) {
	sem, err := NewLineStyle(Dict(map[interface{}]interface{}{"a": "-", "b": ":"}), "")
	require.NoError(t, err)
	m, err := sem.Setup([]string{"a", "b"}, nil)
	require.NoError(t, err)
	x, err := m.Map("b")
	require.NoError(t, err)
	assert.Equal(t, Dash{0, rc.Default().Lines.DottedPattern}, x)

	_, err = NewLineStyle(List("-", "wavy"), "")
	assert.True(t, errors.Is(err, ErrUnrecognizedSpec))
}
