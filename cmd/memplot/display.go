// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"gonum.org/v1/plot"

	"github.com/islbench/memplot/memseries"
)

// openViewer starts the platform image viewer on path without waiting
// for it to exit. It is replaced during testing.
var openViewer = func(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the launcher; the viewer outlives it.
	go cmd.Wait()
	return nil
}

// display renders p to a temporary PNG and opens it in the image
// viewer. The file is left behind for the viewer to read. If no viewer
// can be started, display prints where the chart was written.
func display(p *plot.Plot, name string, opts memseries.ChartOptions, stdout io.Writer) error {
	f, err := os.CreateTemp("", "memplot-"+name+"-*.png")
	if err != nil {
		return err
	}
	if err := memseries.WriteChart(p, f, "png", opts.Width, opts.Height); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := openViewer(f.Name()); err != nil {
		fmt.Fprintf(stdout, "no image viewer (%v); chart written to %s\n", err, f.Name())
	}
	return nil
}
