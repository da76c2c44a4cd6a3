// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-semmap/rules"
	"github.com/aclements/go-semmap/scales"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// A Semantic is the mapping policy of one visual channel.
//
// The variants are Discrete (and its specializations built by
// NewBoolean, NewMarker, NewLineStyle and NewHatch), Continuous (and
// NewArea, NewWidth, NewAlpha, NewLineWidth and NewEdgeWidth), and
// Color.
type Semantic interface {
	// Variable is the channel name used in messages.
	Variable() string

	// Standardize converts a single user-supplied value to the
	// channel's canonical representation. It is idempotent.
	Standardize(v interface{}) (interface{}, error)

	// Setup realizes a Mapping for the given data column. The
	// scale supplies the level order, declared type and
	// normalization. Setup does not modify the Semantic, so
	// repeated calls give equivalent mappings.
	Setup(data table.Slice, scale scales.Scale) (Mapping, error)
}

// base holds what every Semantic variant shares.
type base struct {
	variable string
	opts     options
}

func (b *base) Variable() string {
	return b.variable
}

func (b *base) warn(msg string, fields ...zap.Field) {
	b.opts.log.Warn(msg, append([]zap.Field{zap.String("variable", b.variable)}, fields...)...)
}

// formatLevel formats a level the way it would be written in source.
func formatLevel(l interface{}) string {
	if s, ok := l.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", l)
}

// checkDictNotMissingLevels fails if dict lacks a value for any level.
// The error lists all missing levels, sorted by their string form.
func (b *base) checkDictNotMissingLevels(levels []interface{}, dict map[interface{}]interface{}) error {
	have := make(map[interface{}]bool, len(dict))
	for k := range dict {
		have[rules.LevelKey(k)] = true
	}
	var missing []interface{}
	for _, l := range levels {
		if !have[rules.LevelKey(l)] {
			missing = append(missing, l)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return fmt.Sprint(missing[i]) < fmt.Sprint(missing[j])
	})
	formatted := make([]string, len(missing))
	for i, l := range missing {
		formatted[i] = formatLevel(l)
	}
	err := errors.Newf("Missing %s for following value(s): %s", b.variable, strings.Join(formatted, ", "))
	return errors.Mark(err, ErrMissingLevels)
}

// ensureListNotTooShort returns values cycled to the number of levels,
// logging a warning if any cycling was needed.
func (b *base) ensureListNotTooShort(levels, values []interface{}) ([]interface{}, error) {
	if len(levels) <= len(values) {
		return values, nil
	}
	if len(values) == 0 {
		err := errors.Newf("The %s list is empty but %d values are needed", b.variable, len(levels))
		return nil, errors.Mark(err, ErrMissingLevels)
	}
	b.warn(fmt.Sprintf("The %s list has fewer values (%d) than needed (%d) and will cycle, which may produce an uninterpretable plot.",
		b.variable, len(values), len(levels)),
		zap.Int("values", len(values)), zap.Int("needed", len(levels)))

	out := make([]interface{}, len(levels))
	for i := range out {
		out[i] = values[i%len(values)]
	}
	return out, nil
}

// columnLookup pairs each row of data with the corresponding value of
// column. The first row of each level decides its value.
func (b *base) columnLookup(data table.Slice, column []interface{}) (*LookupMapping, error) {
	rows := rules.Values(data)
	if len(rows) != len(column) {
		return nil, errors.Newf("%s column has %d values for %d rows of data", b.variable, len(column), len(rows))
	}
	m := &LookupMapping{table: make(map[interface{}]interface{})}
	for i, x := range rows {
		if rules.IsMissing(x) {
			continue
		}
		k := rules.LevelKey(x)
		if _, ok := m.table[k]; !ok {
			m.table[k] = column[i]
		}
	}
	return m, nil
}

// wrongType returns an ErrWrongType error for a spec the channel can't
// use.
func (b *base) wrongType(what string, spec ValueSpec) error {
	err := errors.Newf("Using %s %s mapping, but values provided as %s.", what, b.variable, spec.Kind())
	return errors.Mark(err, ErrWrongType)
}

// setupScale realizes scale against data.
func (b *base) setupScale(data table.Slice, scale scales.Scale) (scales.Scale, error) {
	if scale == nil {
		scale = scales.NewAuto()
	}
	sc, err := scale.Setup(data)
	if err != nil {
		return nil, errors.Wrapf(err, "setting up %s scale", b.variable)
	}
	return sc, nil
}
