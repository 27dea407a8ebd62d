// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memseries

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartOptions control how Chart draws a Comparison.
type ChartOptions struct {
	Title  string
	YLabel string

	// ErrorBars draws ± one standard deviation on every bar.
	ErrorBars bool
	// CapWidth is the width of the error bar caps. It is ignored
	// unless ErrorBars is set.
	CapWidth vg.Length

	// Colors are the bar colors, one per series.
	Colors []color.Color

	// Ticks labels the Y axis. If nil, the plot default is used.
	Ticks plot.Ticker

	// Width and Height are the size of the rendered chart. The bar
	// width is derived from Width.
	Width, Height vg.Length
}

var (
	royalBlue = color.RGBA{0x41, 0x69, 0xe1, 0xff}
	seaGreen  = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
)

// DefaultChartOptions returns the options used for a chart titled
// title: a "Bytes" axis, blue and green bars, and 6x4 inches.
func DefaultChartOptions(title string) ChartOptions {
	return ChartOptions{
		Title:    title,
		YLabel:   "Bytes",
		CapWidth: vg.Points(10),
		Colors:   []color.Color{royalBlue, seaGreen},
		Width:    6 * vg.Inch,
		Height:   4 * vg.Inch,
	}
}

// ChartOptionsFor returns the default options for an input whose base
// name is name, with error bars and caps enabled according to mode.
// Without error bars, CapWidth is zero.
func ChartOptionsFor(name string, mode ErrorBarMode, sentinel string) ChartOptions {
	opts := DefaultChartOptions(name)
	opts.ErrorBars = ErrorBarsEnabled(mode, name, sentinel)
	if !opts.ErrorBars {
		opts.CapWidth = 0
	}
	return opts
}

// barFraction is the share of each x slot covered by one bar.
const barFraction = 0.35

// Chart draws c as a grouped bar chart with one group of bars per x
// value and one bar per series, showing group means.
func Chart(c *Comparison, opts ChartOptions) (*plot.Plot, error) {
	if len(c.Series) == 0 || len(c.Xs) == 0 {
		return nil, errors.New("no data to chart")
	}
	if len(opts.Colors) < len(c.Series) {
		return nil, fmt.Errorf("%d colors for %d series", len(opts.Colors), len(c.Series))
	}
	width := opts.Width
	if width <= 0 {
		width = 6 * vg.Inch
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Y.Label.Text = opts.YLabel
	if opts.Ticks != nil {
		p.Y.Tick.Marker = opts.Ticks
	}
	p.Legend.Top = true

	// Leave room for the axis and labels, then split the remaining
	// width evenly between x slots.
	slot := width * 0.8 / vg.Length(len(c.Xs))
	w := slot * barFraction

	sums := c.Summaries()
	n := len(c.Series)
	for i, s := range c.Series {
		means := make(plotter.Values, len(s.Groups))
		for j := range s.Groups {
			means[j] = sums[i][j].Mean
		}
		bar, err := plotter.NewBarChart(means, w)
		if err != nil {
			return nil, err
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = opts.Colors[i]
		// Center the group of bars on the nominal x position.
		bar.Offset = w * vg.Length(2*i-n+1) / 2
		p.Add(bar)
		p.Legend.Add(s.Name, bar)

		if opts.ErrorBars {
			eb, err := newOffsetErrorBars(sums[i], bar.Offset)
			if err != nil {
				return nil, err
			}
			eb.CapWidth = opts.CapWidth
			p.Add(eb)
		}
	}

	labels := make([]string, len(c.Xs))
	for i, x := range c.Xs {
		labels[i] = strconv.Itoa(x)
	}
	p.NominalX(labels...)

	return p, nil
}

type meanErrors struct {
	plotter.XYs
	plotter.YErrors
}

// offsetErrorBars draws plotter.YErrorBars shifted horizontally by a
// fixed canvas distance, so they line up with an offset bar chart.
type offsetErrorBars struct {
	*plotter.YErrorBars
	Offset vg.Length
}

func newOffsetErrorBars(sums []Summary, offset vg.Length) (*offsetErrorBars, error) {
	pts := meanErrors{
		XYs:     make(plotter.XYs, len(sums)),
		YErrors: make(plotter.YErrors, len(sums)),
	}
	for i, s := range sums {
		pts.XYs[i].X = float64(i)
		pts.XYs[i].Y = s.Mean
		pts.YErrors[i].Low = s.StdDev
		pts.YErrors[i].High = s.StdDev
	}
	b, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, err
	}
	return &offsetErrorBars{YErrorBars: b, Offset: offset}, nil
}

// Plot implements the plot.Plotter interface.
func (e *offsetErrorBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, err := range e.YErrors {
		x := trX(e.XYs[i].X) + e.Offset
		ylow := trY(e.XYs[i].Y - math.Abs(err.Low))
		yhigh := trY(e.XYs[i].Y + math.Abs(err.High))

		bar := c.ClipLinesY([]vg.Point{{X: x, Y: ylow}, {X: x, Y: yhigh}})
		c.StrokeLines(e.LineStyle, bar...)
		if e.CapWidth > 0 {
			e.drawCap(&c, x, ylow)
			e.drawCap(&c, x, yhigh)
		}
	}
}

func (e *offsetErrorBars) drawCap(c *draw.Canvas, x, y vg.Length) {
	if !c.Contains(vg.Point{X: x, Y: y}) {
		return
	}
	c.StrokeLine2(e.LineStyle, x-e.CapWidth/2, y, x+e.CapWidth/2, y)
}

// GlyphBoxes implements the plot.GlyphBoxer interface.
func (e *offsetErrorBars) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	bs := e.YErrorBars.GlyphBoxes(plt)
	for i := range bs {
		bs[i].Rectangle.Min.X += e.Offset
		bs[i].Rectangle.Max.X += e.Offset
	}
	return bs
}

// chartFormats are the image formats plot.Plot.WriterTo accepts.
var chartFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// FormatOf returns the chart format implied by the extension of path,
// such as "png" for "out/chart.PNG".
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !chartFormats[ext] {
		if ext == "" {
			return "", fmt.Errorf("%s: no file extension to infer the chart format from", path)
		}
		return "", fmt.Errorf("%s: unsupported chart format %q", path, ext)
	}
	return ext, nil
}

// WriteChart renders p at the given size in format (see FormatOf)
// and writes it to w.
func WriteChart(p *plot.Plot, w io.Writer, format string, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
