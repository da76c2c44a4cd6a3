// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"testing"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-semmap/palettes"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = colorful.Color{R: 1}
	green = colorful.Color{G: 1}
	blue  = colorful.Color{B: 1}
)

func levelNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("l%02d", i)
	}
	return out
}

func TestColorDefaultCycle(t *testing.T) {
	sem, err := NewColor(ValueSpec{}, "")
	require.NoError(t, err)
	assert.Equal(t, "color", sem.Variable())

	cycle, err := palettes.ColorCycle(nil)
	require.NoError(t, err)
	data := levelNames(3)
	m, err := sem.Setup(data, nil)
	require.NoError(t, err)
	got, err := m.MapSlice(data)
	require.NoError(t, err)
	for i, c := range got {
		assert.Equal(t, cycle[i], c)
	}
}

func TestColorDefaultManyLevels(t *testing.T) {
	sem, err := NewColor(ValueSpec{}, "hue")
	require.NoError(t, err)
	for _, n := range []int{10, 11, 25} {
		data := levelNames(n)
		m, err := sem.Setup(data, nil)
		require.NoError(t, err)
		lm := m.(*LookupMapping)
		assert.Equal(t, n, lm.Len())

		seen := map[colorful.Color]bool{}
		for _, c := range lm.Table() {
			seen[c.(colorful.Color)] = true
		}
		assert.Len(t, seen, n, "n=%d colors should be distinct", n)
	}
}

func TestColorList(t *testing.T) {
	opt, logs := observe()
	sem, err := NewColor(List("red", "#00ff00"), "color", opt)
	require.NoError(t, err)
	m, err := sem.Setup([]string{"a", "b", "c"}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{red, green, red}, got)
	assert.Equal(t, 1, logs.Len())
}

func TestColorDict(t *testing.T) {
	sem, err := NewColor(Dict(map[interface{}]interface{}{"a": "blue", "b": "r"}), "color")
	require.NoError(t, err)
	m, err := sem.Setup([]string{"b", "a"}, nil)
	require.NoError(t, err)
	x, err := m.Map("a")
	require.NoError(t, err)
	assert.Equal(t, blue, x)

	_, err = sem.Setup([]string{"a", "b", "q", "p"}, nil)
	assert.True(t, errors.Is(err, ErrMissingLevels))
	assert.EqualError(t, err, `Missing color for following value(s): "p", "q"`)
}

func TestColorBadSpec(t *testing.T) {
	_, err := NewColor(List("not a color"), "color")
	assert.True(t, errors.Is(err, palettes.ErrBadColor))
	_, err = NewColor(Range(0, 1), "color")
	assert.True(t, errors.Is(err, ErrWrongType))
}

func TestColorMissingPaletteEntry(t *testing.T) {
	_, err := NewColor(List("red", nil, "blue"), "")
	assert.True(t, errors.Is(err, palettes.ErrBadColor))
	assert.Contains(t, err.Error(), "color palette entry 1")

	_, err = NewColor(Dict(map[interface{}]interface{}{1: "red", 2: nil}), "hue")
	assert.True(t, errors.Is(err, palettes.ErrBadColor))
	assert.Contains(t, err.Error(), "hue palette entry 2")
}

func TestColorQualitativeName(t *testing.T) {
	sem, err := NewColor(Named("deep"), "color")
	require.NoError(t, err)
	// Numeric data with a qualitative palette maps categorically.
	m, err := sem.Setup([]float64{1, 2, 3}, nil)
	require.NoError(t, err)
	require.IsType(t, &LookupMapping{}, m)
	want, err := palettes.ColorPalette("deep", 3, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestColorNumericDefault(t *testing.T) {
	sem, err := NewColor(ValueSpec{}, "color")
	require.NoError(t, err)
	m, err := sem.Setup([]float64{0, 5, 10}, nil)
	require.NoError(t, err)
	require.IsType(t, &NormedMapping{}, m)
	for _, x := range []float64{0, 5, 10} {
		got, err := m.Map(x)
		require.NoError(t, err)
		want := palettes.FromColor(palettes.DefaultCubehelix.Map(x / 10))
		assert.Equal(t, want, got)
	}
}

func TestColorNumericNamed(t *testing.T) {
	sem, err := NewColor(Named("viridis"), "color")
	require.NoError(t, err)
	m, err := sem.Setup([]float64{2, 4}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, palettes.FromColor(palette.Viridis.Map(0)), got[0])
	assert.Equal(t, palettes.FromColor(palette.Viridis.Map(1)), got[1])

	sem, err = NewColor(Named("no-such-palette"), "color")
	require.NoError(t, err)
	_, err = sem.Setup([]float64{2, 4}, nil)
	assert.True(t, errors.Is(err, palettes.ErrUnknownPalette))
}

func TestColorColormap(t *testing.T) {
	cmap := palettes.Listed{red, blue}
	sem, err := NewColor(Colormap(cmap), "color")
	require.NoError(t, err)

	m, err := sem.Setup([]float64{0, 10}, scales.NewLinear())
	require.NoError(t, err)
	got, err := m.MapSlice([]float64{0, 10})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{red, blue}, got)

	// Categorical data samples the colormap.
	m, err = sem.Setup([]string{"x", "y"}, nil)
	require.NoError(t, err)
	got, err = m.MapSlice([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{red, blue}, got)
}

func TestColorLegacyDict(t *testing.T) {
	sem, err := NewColor(Dict(map[interface{}]interface{}{1: "red", 2: "blue"}), "color")
	require.NoError(t, err)
	m, err := sem.Setup([]float64{1, 2}, scales.NewLinear())
	require.NoError(t, err)

	x, err := m.Map(1)
	require.NoError(t, err)
	assert.Equal(t, red, x)
	x, err = m.Map(2.0)
	require.NoError(t, err)
	assert.Equal(t, blue, x)

	// Other numbers fall back to a colormap of the dict's colors.
	x, err = m.Map(1.25)
	require.NoError(t, err)
	assert.Equal(t, red, x)
	x, err = m.Map(1.75)
	require.NoError(t, err)
	assert.Equal(t, blue, x)
}

func TestColorIdentity(t *testing.T) {
	sem, err := NewColor(Identity(), "color")
	require.NoError(t, err)
	m, err := sem.Setup([]string{"red"}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]string{"red", "b"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{red, blue}, got)

	_, err = m.Map("bogus")
	assert.Error(t, err)
}

func TestColorCycleReference(t *testing.T) {
	sem, err := NewColor(List("C2", "C0"), "color")
	require.NoError(t, err)
	cycle, err := palettes.ColorCycle(nil)
	require.NoError(t, err)
	m, err := sem.Setup([]string{"a", "b"}, nil)
	require.NoError(t, err)
	got, err := m.MapSlice([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{cycle[2], cycle[0]}, got)
}
