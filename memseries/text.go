// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/islbench/memplot/internal/texttab"
	"github.com/islbench/memplot/memunit"
)

// FormatText writes a fixed-width table of c to w: one row per x
// value, a "mean ± stddev%" column per series, and, for two series,
// the change of the second series' mean relative to the first.
// Means share one scale of class cls. Missing groups print as "-".
func FormatText(w io.Writer, c *Comparison, cls memunit.Class) error {
	sums := c.Summaries()

	var means []float64
	for i, s := range c.Series {
		for j, g := range s.Groups {
			if !g.Missing {
				means = append(means, sums[i][j].Mean)
			}
		}
	}
	scale := memunit.CommonScale(means, cls)
	delta := len(c.Series) == 2

	var tab texttab.Table
	tab.Row().Cell("x")
	for _, s := range c.Series {
		tab.Cell(s.Name, texttab.Right)
	}
	if delta {
		tab.Cell("delta", texttab.Right)
	}

	for j, x := range c.Xs {
		tab.Row().Cell(strconv.Itoa(x))
		for i, s := range c.Series {
			if s.Groups[j].Missing {
				tab.Cell("-", texttab.Right)
				continue
			}
			tab.Cell(formatSummary(sums[i][j], scale), texttab.Right)
		}
		if delta {
			tab.Cell(formatDelta(c.Series[0].Groups[j], c.Series[1].Groups[j], sums[0][j], sums[1][j]), texttab.Right)
		}
	}
	return tab.Format(w)
}

func formatSummary(s Summary, scale memunit.Scaler) string {
	m := scale.Format(s.Mean)
	if s.Mean == 0 {
		return m
	}
	return fmt.Sprintf("%s ± %.0f%%", m, 100*s.StdDev/math.Abs(s.Mean))
}

func formatDelta(a, b Group, sa, sb Summary) string {
	if a.Missing || b.Missing {
		return "-"
	}
	if sa.Mean == 0 {
		return "?"
	}
	return fmt.Sprintf("%+.2f%%", 100*(sb.Mean-sa.Mean)/sa.Mean)
}

// FormatCSV writes the summary of every group of c to w as CSV, one
// row per x value, with unscaled values.
func FormatCSV(w io.Writer, c *Comparison) error {
	cw := csv.NewWriter(w)
	header := []string{"x"}
	for _, s := range c.Series {
		for _, col := range []string{"n", "mean", "stddev", "min", "max", "missing"} {
			header = append(header, s.Name+" "+col)
		}
	}
	cw.Write(header)

	sums := c.Summaries()
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for j, x := range c.Xs {
		row := []string{strconv.Itoa(x)}
		for i, s := range c.Series {
			sum := sums[i][j]
			row = append(row,
				strconv.Itoa(sum.N), f(sum.Mean), f(sum.StdDev), f(sum.Min), f(sum.Max),
				strconv.FormatBool(s.Groups[j].Missing))
		}
		cw.Write(row)
	}
	cw.Flush()
	return cw.Error()
}
