// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Memplot charts memory measurements of two implementations.
//
// Usage:
//
//	memplot [flags] DATA_FILEPATH [OUTPUT_FILE]
//
// Each line of DATA_FILEPATH has the form
//
//	<series>/<x> <bytes> <bytes> ...
//
// for example
//
//	Optimized/1000 52344 52344 52400
//	CGAL/1000 98112 98112 98240
//
// The file must contain exactly two series. Memplot draws a grouped
// bar chart with one group per input size x and one bar per series
// showing the mean of the measurements. A series that has no line for
// some x is drawn as a zero bar at that x.
//
// The chart title is the base name of DATA_FILEPATH without its
// extension. Error bars of ± one standard deviation are drawn when
// that name is "Random" (see -sentinel and -errorbars); the other
// workloads are deterministic.
//
// If OUTPUT_FILE is given, the chart is written to it in the format
// named by its extension: png, svg, pdf, eps, jpg, or tif. Otherwise
// the chart is rendered to a temporary PNG and opened in the system
// image viewer.
//
// Either path may be a Google Cloud Storage object, gs://bucket/object.
// DATA_FILEPATH may be "-" for standard input.
//
// The -summary flag additionally prints the per-x means and standard
// deviations as a text table or as CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/islbench/memplot/internal/blob"
	"github.com/islbench/memplot/memfmt"
	"github.com/islbench/memplot/memseries"
	"github.com/islbench/memplot/memunit"
)

var exit = os.Exit // replaced during testing

// errUsage reports bad command-line arguments after usage has been
// printed.
var errUsage = errors.New("usage")

const usageLine = "Usage: memplot [flags] DATA_FILEPATH [OUTPUT_FILE]\n"

func main() {
	log.SetPrefix("memplot: ")
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != errUsage {
			log.Print(err)
		}
		exit(1)
	}
}

type config struct {
	series      string
	sentinel    string
	errorBars   memseries.ErrorBarMode
	title       string
	yLabel      string
	units       string
	width       float64
	height      float64
	summary     string
	credentials string
	verbose     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "memplot: ", 0)

	var cfg config
	fs := flag.NewFlagSet("memplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stdout, usageLine)
		fmt.Fprintf(stdout, "Flags:\n")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fs.SetOutput(stderr)
	}
	fs.StringVar(&cfg.series, "series", "", "comma-separated `names` of the two series, in bar order (default: order of appearance)")
	fs.StringVar(&cfg.sentinel, "sentinel", memseries.DefaultSentinel, "input base `name` that enables error bars in auto mode")
	fs.Var(&cfg.errorBars, "errorbars", "when to draw standard deviation error bars: auto, always, or never")
	fs.StringVar(&cfg.title, "title", "", "chart `title` (default: input base name)")
	fs.StringVar(&cfg.yLabel, "ylabel", "Bytes", "y axis `label`")
	fs.StringVar(&cfg.units, "units", "raw", "y axis and summary number format: binary, decimal, or raw")
	fs.Float64Var(&cfg.width, "width", 6, "chart width in `inches`")
	fs.Float64Var(&cfg.height, "height", 4, "chart height in `inches`")
	fs.StringVar(&cfg.summary, "summary", "none", "print a summary to stdout: text, csv, or none")
	fs.StringVar(&cfg.credentials, "credentials", "", "service account key `file` for gs:// paths")
	fs.BoolVar(&cfg.verbose, "v", false, "print verbose log messages")

	if err := fs.Parse(args); err != nil {
		// fs has already printed the error and usage.
		return errUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return errUsage
	}
	input := fs.Arg(0)
	output := fs.Arg(1)

	// Check everything that doesn't need the data first.
	cls, err := memunit.ParseClass(cfg.units)
	if err != nil {
		return err
	}
	switch cfg.summary {
	case "text", "csv", "none":
	default:
		return fmt.Errorf("unknown summary format %q (want text, csv, or none)", cfg.summary)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("chart size %gx%g must be positive", cfg.width, cfg.height)
	}
	format := "png"
	if output != "" {
		if format, err = memseries.FormatOf(output); err != nil {
			return err
		}
	}

	vlog := func(msg string, args ...interface{}) {
		if cfg.verbose {
			logger.Printf(msg, args...)
		}
	}

	opener := &blob.Opener{CredentialsFile: cfg.credentials}
	defer opener.Close()

	// Read and align the measurements.
	bo := memseries.BuilderOptions{
		Warn: func(msg string, args ...interface{}) {
			logger.Printf(strings.TrimSuffix(msg, "\n"), args...)
		},
	}
	if cfg.series != "" {
		for _, name := range strings.Split(cfg.series, ",") {
			bo.Series = append(bo.Series, strings.TrimSpace(name))
		}
	}
	builder := memseries.NewBuilder(bo)
	vlog("reading %s", input)
	r, err := opener.Open(ctx, input)
	if err != nil {
		return err
	}
	err = builder.AddReader(memfmt.NewReader(r, input))
	r.Close()
	if err != nil {
		return err
	}
	c, err := builder.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	vlog("%d x values, series %s and %s", len(c.Xs), c.Series[0].Name, c.Series[1].Name)

	switch cfg.summary {
	case "text":
		err = memseries.FormatText(stdout, c, cls)
	case "csv":
		err = memseries.FormatCSV(stdout, c)
	}
	if err != nil {
		return err
	}

	// Draw the chart.
	name := blob.BaseName(input)
	opts := memseries.ChartOptionsFor(name, cfg.errorBars, cfg.sentinel)
	if cfg.title != "" {
		opts.Title = cfg.title
	}
	opts.YLabel = cfg.yLabel
	opts.Width = vg.Length(cfg.width) * vg.Inch
	opts.Height = vg.Length(cfg.height) * vg.Inch
	if cls != memunit.Raw {
		opts.Ticks = memunit.Ticks{Class: cls}
	}
	vlog("error bars: %v", opts.ErrorBars)
	p, err := memseries.Chart(c, opts)
	if err != nil {
		return err
	}

	if output == "" {
		return display(p, name, opts, stdout)
	}

	w, err := opener.Create(ctx, output)
	if err != nil {
		return err
	}
	if err := memseries.WriteChart(p, w, format, opts.Width, opts.Height); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", output, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	vlog("wrote %s", output)
	return nil
}
