// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memseries

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/islbench/memplot/memunit"
)

func testComparison() *Comparison {
	return &Comparison{
		Xs: []int{10, 20, 30},
		Series: []*Series{
			{Name: "Optimized", Groups: []Group{
				{X: 10, Samples: []int64{100, 120, 110}},
				{X: 20, Samples: []int64{200, 220, 210}},
				{X: 30, Samples: []int64{300, 320, 310}},
			}},
			{Name: "CGAL", Groups: []Group{
				{X: 10, Samples: []int64{150, 160, 170}},
				{X: 20, Samples: []int64{250, 260, 270}},
				{X: 30, Samples: []int64{0, 0, 0}, Missing: true},
			}},
		},
	}
}

func TestChartOptionsFor(t *testing.T) {
	opts := ChartOptionsFor("Random", ErrorBarsAuto, DefaultSentinel)
	if !opts.ErrorBars || opts.CapWidth <= 0 {
		t.Errorf("Random: want error bars with non-zero caps, got %v, %v", opts.ErrorBars, opts.CapWidth)
	}
	if opts.Title != "Random" || opts.YLabel != "Bytes" {
		t.Errorf("Random: got title %q, y label %q", opts.Title, opts.YLabel)
	}

	opts = ChartOptionsFor("Sorted", ErrorBarsAuto, DefaultSentinel)
	if opts.ErrorBars || opts.CapWidth != 0 {
		t.Errorf("Sorted: want no error bars and zero caps, got %v, %v", opts.ErrorBars, opts.CapWidth)
	}

	opts = ChartOptionsFor("Sorted", ErrorBarsAuto, "Sorted")
	if !opts.ErrorBars {
		t.Errorf("custom sentinel ignored")
	}
}

func renderSVG(t *testing.T, c *Comparison, opts ChartOptions) string {
	t.Helper()
	p, err := Chart(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteChart(p, &buf, "svg", opts.Width, opts.Height); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestChart(t *testing.T) {
	c := testComparison()
	plain := renderSVG(t, c, ChartOptionsFor("Sorted", ErrorBarsAuto, DefaultSentinel))
	for _, want := range []string{"Sorted", "Bytes", "Optimized", "CGAL", "10", "20", "30"} {
		if !strings.Contains(plain, want) {
			t.Errorf("chart is missing text %q", want)
		}
	}

	withBars := renderSVG(t, c, ChartOptionsFor("Random", ErrorBarsAuto, DefaultSentinel))
	if np, nb := strings.Count(plain, "<path"), strings.Count(withBars, "<path"); nb <= np {
		t.Errorf("error bars added no paths: %d without, %d with", np, nb)
	}
}

func TestChartTicks(t *testing.T) {
	opts := ChartOptionsFor("Sorted", ErrorBarsNever, DefaultSentinel)
	opts.Ticks = memunit.Ticks{Class: memunit.Binary}
	c := testComparison()
	for _, s := range c.Series {
		for i := range s.Groups {
			for j := range s.Groups[i].Samples {
				s.Groups[i].Samples[j] *= 1 << 20
			}
		}
	}
	if svg := renderSVG(t, c, opts); !strings.Contains(svg, "Mi") {
		t.Errorf("binary ticks missing Mi prefix")
	}
}

func TestChartPNG(t *testing.T) {
	opts := ChartOptionsFor("Random", ErrorBarsAuto, DefaultSentinel)
	p, err := Chart(testComparison(), opts)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteChart(p, &buf, "png", 4*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestChartErrors(t *testing.T) {
	if _, err := Chart(&Comparison{}, DefaultChartOptions("x")); err == nil {
		t.Errorf("empty comparison: want error")
	}
	opts := DefaultChartOptions("x")
	opts.Colors = opts.Colors[:1]
	if _, err := Chart(testComparison(), opts); err == nil {
		t.Errorf("too few colors: want error")
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]string{
		"out.png":          "png",
		"dir/Random.SVG":   "svg",
		"gs://b/chart.pdf": "pdf",
		"a.b.jpeg":         "jpeg",
	} {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	for _, path := range []string{"out", "out.gif", "out."} {
		if _, err := FormatOf(path); err == nil {
			t.Errorf("FormatOf(%q): want error", path)
		}
	}
}
