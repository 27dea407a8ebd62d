// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memseries

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// A Summary describes one group of samples.
type Summary struct {
	N        int
	Mean     float64
	StdDev   float64 // population standard deviation
	Min, Max float64
}

// Summarize computes the Summary of samples. The standard deviation
// divides by N, not N-1. An empty sample has the zero Summary.
func Summarize(samples []int64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(samples))
	for i, v := range samples {
		xs[i] = float64(v)
	}
	var s Summary
	s.N = len(xs)
	s.Mean, s.StdDev = stat.PopMeanStdDev(xs, nil)
	s.Min, s.Max = stats.Bounds(xs)
	return s
}

// An ErrorBarMode says when to draw standard deviation error bars.
type ErrorBarMode int

const (
	// ErrorBarsAuto draws error bars only for inputs whose base name
	// is the sentinel name. Only the randomized workload has run to
	// run variation worth showing; the other workloads are
	// deterministic.
	ErrorBarsAuto ErrorBarMode = iota
	ErrorBarsAlways
	ErrorBarsNever
)

// DefaultSentinel is the input base name that turns on error bars in
// ErrorBarsAuto mode.
const DefaultSentinel = "Random"

var errorBarModeNames = []string{"auto", "always", "never"}

func (m ErrorBarMode) String() string {
	if int(m) < len(errorBarModeNames) {
		return errorBarModeNames[m]
	}
	return fmt.Sprintf("ErrorBarMode(%d)", int(m))
}

// Set implements flag.Value.
func (m *ErrorBarMode) Set(s string) error {
	for i, name := range errorBarModeNames {
		if s == name {
			*m = ErrorBarMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown error bar mode %q (want auto, always, or never)", s)
}

// ErrorBarsEnabled reports whether mode draws error bars for an input
// whose base name (without extension) is name.
func ErrorBarsEnabled(mode ErrorBarMode, name, sentinel string) bool {
	switch mode {
	case ErrorBarsAlways:
		return true
	case ErrorBarsNever:
		return false
	}
	return name == sentinel
}
