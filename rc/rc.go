// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rc holds the runtime configuration parameters that
// semantics and marks derive their defaults from.
//
// The defaults match the rendering library's built-in settings. A
// parameter file in TOML or YAML format can override any subset of
// them:
//
//	[lines]
//	linewidth = 2.0
//	dashed_pattern = [4, 2]
//
//	[axes]
//	prop_cycle = ["#4c72b0", "#dd8452", "#55a868"]
package rc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Params is a set of runtime configuration parameters.
type Params struct {
	Lines   Lines   `toml:"lines" yaml:"lines"`
	Patch   Patch   `toml:"patch" yaml:"patch"`
	Scatter Scatter `toml:"scatter" yaml:"scatter"`
	Axes    Axes    `toml:"axes" yaml:"axes"`
}

type Lines struct {
	LineWidth      float64   `toml:"linewidth" yaml:"linewidth"`
	DashedPattern  []float64 `toml:"dashed_pattern" yaml:"dashed_pattern"`
	DashDotPattern []float64 `toml:"dashdot_pattern" yaml:"dashdot_pattern"`
	DottedPattern  []float64 `toml:"dotted_pattern" yaml:"dotted_pattern"`
}

type Patch struct {
	LineWidth float64 `toml:"linewidth" yaml:"linewidth"`
}

type Scatter struct {
	Marker string `toml:"marker" yaml:"marker"`
}

type Axes struct {
	// PropCycle is the ambient color cycle, as color strings.
	PropCycle []string `toml:"prop_cycle" yaml:"prop_cycle"`
}

// Default returns a fresh copy of the built-in parameters.
func Default() *Params {
	return &Params{
		Lines: Lines{
			LineWidth:      1.5,
			DashedPattern:  []float64{3.7, 1.6},
			DashDotPattern: []float64{6.4, 1.6, 1, 1.6},
			DottedPattern:  []float64{1, 1.65},
		},
		Patch:   Patch{LineWidth: 1},
		Scatter: Scatter{Marker: "o"},
		Axes: Axes{PropCycle: []string{
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
		}},
	}
}

// Load reads the parameter file at path and overlays it on the
// defaults. The format is chosen by the file extension: ".toml",
// ".yaml" or ".yml".
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading parameters")
	}
	p, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return p, nil
}

// Parse decodes data in the format named by ext and overlays it on
// the defaults.
func Parse(data []byte, ext string) (*Params, error) {
	p := Default()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(p); err != nil {
			return nil, errors.Wrap(err, "decoding TOML")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, errors.Wrap(err, "decoding YAML")
		}
	default:
		return nil, errors.Newf("unknown parameter file format %q", ext)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Params) validate() error {
	if p.Lines.LineWidth < 0 {
		return errors.Newf("lines.linewidth must be non-negative, got %g", p.Lines.LineWidth)
	}
	if p.Patch.LineWidth < 0 {
		return errors.Newf("patch.linewidth must be non-negative, got %g", p.Patch.LineWidth)
	}
	if len(p.Axes.PropCycle) == 0 {
		return errors.New("axes.prop_cycle must not be empty")
	}
	return nil
}

// Lookup returns the parameter named by a dotted key such as
// "lines.linewidth".
func (p *Params) Lookup(key string) (interface{}, bool) {
	switch key {
	case "lines.linewidth":
		return p.Lines.LineWidth, true
	case "lines.dashed_pattern":
		return p.Lines.DashedPattern, true
	case "lines.dashdot_pattern":
		return p.Lines.DashDotPattern, true
	case "lines.dotted_pattern":
		return p.Lines.DottedPattern, true
	case "patch.linewidth":
		return p.Patch.LineWidth, true
	case "scatter.marker":
		return p.Scatter.Marker, true
	case "axes.prop_cycle":
		return p.Axes.PropCycle, true
	}
	return nil, false
}
