// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// A Reader reads the measurement file format.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Result it returns; a caller should Clone anything it needs to
// retain.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error // current I/O error

	// rec is the record to return from Result. It is either
	// &r.result or a *SyntaxError.
	rec Record

	result Result

	interns map[string]string
}

// A SyntaxError represents a syntax error on a particular line of a
// measurement file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noResult = &SyntaxError{"", 0, "Reader.Scan has not been called"}

// A Record is a single record read from a measurement file. It is
// either a *Result or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file.
	Pos() (fileName string, line int)
}

var _ Record = (*Result)(nil)
var _ Record = (*SyntaxError)(nil)

// NewReader constructs a reader to parse measurements from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// newSyntaxError returns a *SyntaxError at the Reader's current position.
func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.result.fileName, r.result.line, msg}
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	// Lines with many samples can exceed the default token size.
	r.s.Buffer(nil, 1<<20)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.rec = noResult
	if r.interns == nil {
		r.interns = make(map[string]string)
	}

	r.result.Series = ""
	r.result.X = 0
	r.result.Values = r.result.Values[:0]
	r.result.fileName = fileName
	r.result.line = 0
}

// Scan advances the reader to the next record and reports whether a
// record was read.
// The caller should use the Result method to get the record.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.result.line++
		line := bytes.TrimSpace(r.s.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if err := r.parseLine(line); err != nil {
			r.rec = err
		} else {
			r.rec = &r.result
		}
		return true
	}

	// We hit EOF. Check for IO errors.
	r.rec = noResult
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.result.fileName, r.result.line, err)
		return false
	}
	r.err = nil
	return false
}

// parseLine parses line as a measurement record and updates r.result.
func (r *Reader) parseLine(line []byte) *SyntaxError {
	var f []byte

	// Read the "series/x" key.
	f, line = splitField(line)
	slash := bytes.IndexByte(f, '/')
	if slash < 0 {
		return r.newSyntaxError(fmt.Sprintf("missing / in %q", f))
	}
	if slash == 0 {
		return r.newSyntaxError("missing series name")
	}
	r.result.Series = r.intern(f[:slash])
	x, err := strconv.Atoi(string(f[slash+1:]))
	if err != nil {
		return r.newSyntaxError("parsing x value: " + numErr(err))
	}
	r.result.X = x

	// Read the measurements.
	r.result.Values = r.result.Values[:0]
	for {
		f, line = splitField(line)
		if len(f) == 0 {
			break
		}
		v, err := strconv.ParseInt(string(f), 10, 64)
		if err != nil {
			return r.newSyntaxError("parsing measurement: " + numErr(err))
		}
		r.result.Values = append(r.result.Values, v)
	}
	if len(r.result.Values) == 0 {
		return r.newSyntaxError("missing measurements")
	}
	return nil
}

// numErr returns the message of a strconv error without the function
// name prefix.
func numErr(err error) string {
	if ne, ok := err.(*strconv.NumError); ok {
		return fmt.Sprintf("%q: %s", ne.Num, ne.Err)
	}
	return err.Error()
}

// splitField consumes and returns non-whitespace in x as field,
// consumes whitespace following the field, and then returns the
// remaining bytes of x.
func splitField(x []byte) (field, rest []byte) {
	// Collect non-whitespace into field.
	var i int
	for i = 0; i < len(x); i++ {
		if x[i] == ' ' || x[i] == '\t' {
			break
		}
	}
	field = x[:i]
	// Find the beginning of the next field.
	for ; i < len(x); i++ {
		if x[i] != ' ' && x[i] != '\t' {
			break
		}
	}
	return field, x[i:]
}

func (r *Reader) intern(x []byte) string {
	if s, ok := r.interns[string(x)]; ok {
		return s
	}
	s := string(x)
	r.interns[s] = s
	return s
}

// Result returns the record that was just read by Scan. This is either
// a *Result or a *SyntaxError indicating a parse error.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// If this returns a *Result, the caller should not retain the Result,
// as it will be overwritten by the next call to Scan.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every Result from r. It stops at and returns the first
// syntax error or I/O error.
func ReadAll(r io.Reader, fileName string) ([]*Result, error) {
	var out []*Result
	reader := NewReader(r, fileName)
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *Result:
			out = append(out, rec.Clone())
		case *SyntaxError:
			return out, rec
		}
	}
	return out, reader.Err()
}
