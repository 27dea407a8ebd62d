// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memunit

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Ticks is a plot.Ticker for byte axes. It places ticks where
// plot.DefaultTicks does and labels the major ticks with a common
// prefix, such as "1.50Mi".
type Ticks struct {
	Class Class
}

var _ plot.Ticker = Ticks{}

// Ticks implements plot.Ticker.
func (t Ticks) Ticks(min, max float64) []plot.Tick {
	if max <= min {
		return nil
	}
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var major []float64
	for _, tk := range ticks {
		if tk.Label != "" {
			major = append(major, tk.Value)
		}
	}
	s := tickScale(major, t.Class)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = s.Format(ticks[i].Value)
		}
	}
	return ticks
}

// tickScale picks a scale for evenly spaced tick values. The spacing,
// not the smallest value, determines how many digits are needed.
func tickScale(vals []float64, cls Class) Scaler {
	if len(vals) < 2 {
		return CommonScale(vals, cls)
	}
	step := vals[1] - vals[0]
	s := CommonScale([]float64{step}, cls)
	// Ticks are round numbers, so trim the precision back while
	// every tick still formats exactly.
	for s.Prec > 0 {
		t := s
		t.Prec--
		if !exact(vals, t) {
			break
		}
		s = t
	}
	return s
}

// exact reports whether every value in vals survives formatting
// with s.
func exact(vals []float64, s Scaler) bool {
	for _, v := range vals {
		str := strconv.FormatFloat(v/s.Factor, 'f', s.Prec, 64)
		back, err := strconv.ParseFloat(str, 64)
		if err != nil || math.Abs(back*s.Factor-v) > 1e-9*math.Max(1, math.Abs(v)) {
			return false
		}
	}
	return true
}
