// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTable(t *testing.T) {
	var tab Table
	tab.Row().Cell("x").Cell("Optimized").Cell("delta")
	tab.Row().Cell("10").Cell("1.5Ki", Right).Cell("-3%", Right)
	tab.Row().Cell("1000").Cell("-", Right)

	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	want := `x     Optimized  delta
10        1.5Ki    -3%
1000          -
`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("table differs (-want +got):\n%s", diff)
	}
}

func TestTableImplicitRow(t *testing.T) {
	var tab Table
	tab.Cell("a").Cell("b")
	var got strings.Builder
	tab.Format(&got)
	if got.String() != "a  b\n" {
		t.Errorf("got %q", got.String())
	}
}

func TestTableEmpty(t *testing.T) {
	var tab Table
	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("empty table printed %q", got.String())
	}
}

func TestTableMultibyte(t *testing.T) {
	var tab Table
	tab.Row().Cell("mean", Right)
	tab.Row().Cell("1.0Ki ± 5%", Right)
	tab.Row().Cell("10.0Ki ± 25%", Right)
	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	want := "        mean\n  1.0Ki ± 5%\n10.0Ki ± 25%\n"
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("table differs (-want +got):\n%s", diff)
	}
}
