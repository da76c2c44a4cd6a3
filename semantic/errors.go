// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import "github.com/cockroachdb/errors"

// Errors returned by this package are marked with one of these and
// can be tested with errors.Is.
var (
	// ErrMissingLevels means a user-supplied dict of values does
	// not cover every level of the data.
	ErrMissingLevels = errors.New("missing levels")

	// ErrWrongType means a value specification is of a kind the
	// channel can't use, such as a list for a continuous mapping.
	ErrWrongType = errors.New("wrong value type")

	// ErrUnrecognizedSpec means a single value, such as a line
	// style or marker, could not be understood.
	ErrUnrecognizedSpec = errors.New("unrecognized specification")

	// ErrUnseenLevel is returned by a mapping asked for a level it
	// was not set up with.
	ErrUnseenLevel = errors.New("unseen level")

	// ErrNoDefaults means a channel has no way to generate default
	// values and none were given.
	ErrNoDefaults = errors.New("no default values")
)
