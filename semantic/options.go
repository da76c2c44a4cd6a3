// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semantic

import (
	"github.com/aclements/go-semmap/rc"
	"go.uber.org/zap"
)

// An Option configures a Semantic.
type Option func(*options)

type options struct {
	log    *zap.Logger
	params *rc.Params
}

// WithLogger sets the logger that receives warnings. The default is
// zap.L() at construction time.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithParams sets the runtime parameters that defaults derive from.
// The default is rc.Default().
func WithParams(p *rc.Params) Option {
	return func(o *options) {
		if p != nil {
			o.params = p
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: zap.L(), params: rc.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
