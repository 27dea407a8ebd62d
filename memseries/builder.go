// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memseries aligns the two series of a memory measurement file
// on their input sizes, summarizes each group of samples, and renders
// the comparison as a grouped bar chart.
package memseries

import (
	"fmt"
	"strings"

	"github.com/islbench/memplot/memfmt"
)

// BuilderOptions configure a Builder.
type BuilderOptions struct {
	// Series fixes the order of the two series in the comparison
	// (and so the order of bars and legend entries). If empty, series
	// are ordered by first appearance in the input.
	Series []string

	// Warn, if non-nil, is called for recoverable oddities in the
	// input, such as a series that is missing an x value.
	Warn func(format string, args ...interface{})
}

// A Builder accumulates measurement results into a Comparison.
type Builder struct {
	opts   BuilderOptions
	order  []string // series names in first-appearance order
	series map[string]*seriesData
}

type seriesData struct {
	samples map[int][]int64
	xs      []int // x values in file order, with repeats
	width   int   // number of samples on the series' first line
	lastX   int
	unorder bool // warned about decreasing x values
}

// NewBuilder returns a Builder configured by opts.
func NewBuilder(opts BuilderOptions) *Builder {
	return &Builder{
		opts:   opts,
		series: make(map[string]*seriesData),
	}
}

func (b *Builder) warn(format string, args ...interface{}) {
	if b.opts.Warn != nil {
		b.opts.Warn(format, args...)
	}
}

// Add adds the samples in result to the Builder. Results for an x
// value already seen in the same series are merged with the earlier
// samples.
func (b *Builder) Add(result *memfmt.Result) {
	s := b.series[result.Series]
	if s == nil {
		s = &seriesData{samples: make(map[int][]int64), width: len(result.Values)}
		b.series[result.Series] = s
		b.order = append(b.order, result.Series)
	} else if result.X < s.lastX && !s.unorder {
		s.unorder = true
		b.warn("series %s: x value %d follows %d; groups are aligned by x value\n", result.Series, result.X, s.lastX)
	}
	s.lastX = result.X
	s.xs = append(s.xs, result.X)
	s.samples[result.X] = append(s.samples[result.X], result.Values...)
}

// AddReader adds every result read from r. It stops at the first
// syntax error or I/O error and returns it.
func (b *Builder) AddReader(r *memfmt.Reader) error {
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *memfmt.SyntaxError:
			return rec
		case *memfmt.Result:
			b.Add(rec)
		}
	}
	return r.Err()
}

// Build returns the Comparison of the two series added to b.
//
// It is an error if the input does not contain exactly two series, or
// if BuilderOptions.Series names a series that does not appear.
func (b *Builder) Build() (*Comparison, error) {
	if len(b.order) != 2 {
		return nil, fmt.Errorf("found %d series [%s], want exactly 2", len(b.order), strings.Join(b.order, ", "))
	}
	names := b.order
	if len(b.opts.Series) > 0 {
		if len(b.opts.Series) != 2 {
			return nil, fmt.Errorf("series order %q must name exactly 2 series", strings.Join(b.opts.Series, ","))
		}
		for _, name := range b.opts.Series {
			if b.series[name] == nil {
				return nil, fmt.Errorf("series %q not found in input (have %s)", name, strings.Join(b.order, ", "))
			}
		}
		if b.opts.Series[0] == b.opts.Series[1] {
			return nil, fmt.Errorf("series order names %q twice", b.opts.Series[0])
		}
		names = b.opts.Series
	}

	var all []int
	for _, name := range names {
		all = append(all, b.series[name].xs...)
	}
	c := &Comparison{Xs: UniqueXs(all)}

	for _, name := range names {
		s := b.series[name]
		ser := &Series{Name: name, Groups: make([]Group, len(c.Xs))}
		for i, x := range c.Xs {
			g := Group{X: x, Samples: s.samples[x]}
			if len(g.Samples) == 0 {
				// Pad the gap so the two series stay aligned.
				g.Samples = make([]int64, s.width)
				g.Missing = true
				b.warn("series %s has no samples at x=%d; drawing zero\n", name, x)
			}
			ser.Groups[i] = g
		}
		c.Series = append(c.Series, ser)
	}
	return c, nil
}
