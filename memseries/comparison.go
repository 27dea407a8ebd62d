// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memseries

import "github.com/aclements/go-gg/generic/slice"

// A Comparison is two series of measurements aligned on a common,
// sorted set of x values.
type Comparison struct {
	// Xs is the sorted set of distinct x values across both series.
	Xs []int

	// Series are the compared series. Each has one Group per
	// element of Xs.
	Series []*Series
}

// A Series is the measurements of one implementation.
type Series struct {
	Name   string
	Groups []Group // Groups[i] holds the samples at Comparison.Xs[i]
}

// A Group is the samples of one series at one x value.
type Group struct {
	X       int
	Samples []int64

	// Missing is set if the series had no samples at X. In that
	// case Samples is a zero vector as wide as the series' first
	// line.
	Missing bool
}

// UniqueXs returns the distinct values of xs in increasing order.
// xs is not modified.
func UniqueXs(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	out := slice.Nub(xs).([]int)
	slice.Sort(out)
	return out
}

// Summaries returns the summary of every group, indexed by series and
// then by x.
func (c *Comparison) Summaries() [][]Summary {
	out := make([][]Summary, len(c.Series))
	for i, s := range c.Series {
		out[i] = make([]Summary, len(s.Groups))
		for j, g := range s.Groups {
			out[i][j] = Summarize(g.Samples)
		}
	}
	return out
}

// Means returns the mean of every group, indexed by series and then
// by x.
func (c *Comparison) Means() [][]float64 {
	return c.project(func(s Summary) float64 { return s.Mean })
}

// StdDevs returns the population standard deviation of every group,
// indexed by series and then by x.
func (c *Comparison) StdDevs() [][]float64 {
	return c.project(func(s Summary) float64 { return s.StdDev })
}

func (c *Comparison) project(f func(Summary) float64) [][]float64 {
	sums := c.Summaries()
	out := make([][]float64, len(sums))
	for i, row := range sums {
		out[i] = make([]float64, len(row))
		for j, s := range row {
			out[i][j] = f(s)
		}
	}
	return out
}
