// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"
)

// loadCSV reads a CSV table with a header row. A column whose
// non-empty cells all parse as numbers becomes a []float64 with NaN
// for empty cells. Any other column is a []string.
func loadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty input: no header row")
	} else if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Newf("column %d has no name", i+1)
		}
		if seen[name] {
			return nil, errors.Newf("duplicate column %q", name)
		}
		seen[name] = true
		header[i] = name
	}

	cells := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "reading rows")
		}
		for i, cell := range rec {
			cells[i] = append(cells[i], strings.TrimSpace(cell))
		}
	}

	b := new(table.Builder)
	for i, name := range header {
		if nums, ok := parseNumbers(cells[i]); ok {
			b.Add(name, nums)
		} else {
			b.Add(name, append([]string{}, cells[i]...))
		}
	}
	return b.Done(), nil
}

// parseNumbers parses every cell of col as a float. Empty cells are
// NaN. It fails if any cell isn't a number or if every cell is empty.
func parseNumbers(col []string) ([]float64, bool) {
	out := make([]float64, len(col))
	numeric := false
	for i, cell := range col {
		if cell == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		out[i], numeric = f, true
	}
	return out, numeric
}
