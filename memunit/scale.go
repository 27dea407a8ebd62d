// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memunit formats byte counts with SI or binary prefixes.
package memunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Binary scales values by powers of 1024 and uses the IEC
	// prefixes "Ki", "Mi", and so on. This is the default for
	// byte counts.
	Binary Class = iota
	// Decimal scales values by powers of 1000 and uses the SI
	// prefixes "k", "M", and so on.
	Decimal
	// Raw leaves values unscaled.
	Raw
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	case Raw:
		return "Raw"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 Ki => 1024)
	Prefix string  // Unit prefix ("k", "Mi", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, with a Binary scale chosen for 1.5 MiB,
// Format(1572864) returns "1.50Mi".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// NoOpScaler formats numbers with the smallest number of digits
// necessary to capture the exact value, and no prefix. It is meant for
// output consumed by another program, such as CSV.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var siFactors = mkFactors(1000, []string{"T", "G", "M", "k", ""})
var iecFactors = mkFactors(1024, []string{"Ti", "Gi", "Mi", "Ki", ""})

// mkFactors builds the factor table for prefixes, largest first.
// The thresholds are derived from the printed rounding boundaries so
// that a value which prints as "100.0" at one precision is never shown
// as "99.99" at another.
func mkFactors(base float64, prefixes []string) []factor {
	var factors []factor
	for i, p := range prefixes {
		f := math.Pow(base, float64(len(prefixes)-1-i))
		factors = append(factors, factor{f, p, 99.995 * f, 9.9995 * f, .99995 * f})
	}
	return factors
}

// Scale formats val using at least three significant digits,
// appending an SI or binary prefix. See Scaler.Format for details.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value.
func CommonScale(vals []float64, cls Class) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	if cls == Raw {
		return NoOpScaler
	}
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{0, 1, ""}
	}

	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = siFactors
	case Binary:
		factors = iecFactors
	}

	for _, factor := range factors {
		switch {
		case min >= factor.t100:
			return Scaler{1, factor.factor, factor.prefix}
		case min >= factor.t10:
			return Scaler{2, factor.factor, factor.prefix}
		case min >= factor.t1:
			return Scaler{3, factor.factor, factor.prefix}
		}
	}

	// Below one byte; only means of tiny samples get here.
	return Scaler{3, 1, ""}
}

// ParseClass parses the name of a Class: "binary", "decimal", or
// "raw".
func ParseClass(s string) (Class, error) {
	switch s {
	case "binary":
		return Binary, nil
	case "decimal":
		return Decimal, nil
	case "raw":
		return Raw, nil
	}
	return 0, fmt.Errorf("unknown unit class %q (want binary, decimal, or raw)", s)
}
