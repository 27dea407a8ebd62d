// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memfmt reads memory measurement files.
//
// A measurement file holds one record per line:
//
//	<series>/<x> <bytes> <bytes> ...
//
// where series names the implementation being measured (for example
// "Optimized" or "CGAL"), x is the integer input size the
// measurements were taken at, and each following field is one integer
// measurement, typically a peak heap size in bytes. Blank lines and
// lines beginning with "#" are ignored.
//
// The reader is structured like bufio.Scanner: call Scan until it
// returns false, inspect each Record with Result, and check Err.
package memfmt

// A Result is one line of a measurement file.
//
// Results returned by Reader.Result are reused by the next call to
// Scan. Use Clone to retain one.
type Result struct {
	// Series is the name of the implementation, the part of the
	// first field before "/".
	Series string

	// X is the input size, the part of the first field after "/".
	X int

	// Values are the measurements on this line, in file order.
	Values []int64

	// fileName and line record where this Result was read from.
	fileName string
	line     int
}

// Clone makes a copy of Result that shares no state with r.
func (r *Result) Clone() *Result {
	r2 := &Result{
		Series:   r.Series,
		X:        r.X,
		Values:   append([]int64(nil), r.Values...),
		fileName: r.fileName,
		line:     r.line,
	}
	return r2
}

// Pos returns the file name and line number of a Result that was read
// by a Reader. For Results that were not read from a file, it returns
// "", 0.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}
