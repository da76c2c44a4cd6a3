// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package semantic maps data values to visual properties.
//
// A Semantic is the policy for one visual channel of a plot, such as
// color, marker shape, line style, width or opacity. It is built from
// a user's ValueSpec and knows how to standardize values for its
// channel, whether to treat the backing data as categorical or
// continuous, and how to generate defaults when the user supplies
// none.
//
// Calling Setup with the full data column for the channel and its
// scale produces a Mapping, which is then applied to individual
// values or whole columns while the plot is drawn:
//
//	sem, err := semantic.NewMarker(semantic.ValueSpec{}, "marker")
//	...
//	m, err := sem.Setup(species, scales.NewAuto())
//	...
//	shape, err := m.Map("setosa")
//
// There are three kinds of Mapping: an IdentityMapping for data that
// already holds visual values, a LookupMapping from each categorical
// level to its value, and a NormedMapping that normalizes numbers
// through the scale and transforms them into the output space.
//
// Non-fatal problems, such as a list of values too short for the
// number of levels, are logged as warnings to the zap.Logger given
// with WithLogger.
package semantic
