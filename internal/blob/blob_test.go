// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseGCS(t *testing.T) {
	for _, test := range []struct {
		path           string
		bucket, object string
		ok             bool
	}{
		{"gs://bench/runs/Random.txt", "bench", "runs/Random.txt", true},
		{"gs://bench/x", "bench", "x", true},
		{"gs://bench", "", "", false},
		{"gs://bench/", "", "", false},
		{"gs:///obj", "", "", false},
		{"runs/Random.txt", "", "", false},
	} {
		b, o, ok := ParseGCS(test.path)
		if b != test.bucket || o != test.object || ok != test.ok {
			t.Errorf("ParseGCS(%q) = %q, %q, %v; want %q, %q, %v", test.path, b, o, ok, test.bucket, test.object, test.ok)
		}
	}
}

func TestBaseName(t *testing.T) {
	for in, want := range map[string]string{
		"Random.txt":                 "Random",
		"data/valgrind/Sorted.txt":   "Sorted",
		"gs://bench/runs/Random.txt": "Random",
		"noext":                      "noext",
		"a.b.txt":                    "a.b",
		"-":                          "stdin",
	} {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	var o Opener
	defer o.Close()

	p := filepath.Join(t.TempDir(), "chart.svg")
	w, err := o.Create(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, "<svg/>"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := o.Open(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("read back %q", data)
	}
	if o.client != nil {
		t.Errorf("local access created a GCS client")
	}
}

func TestOpenMissing(t *testing.T) {
	var o Opener
	_, err := o.Open(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !os.IsNotExist(err) {
		t.Errorf("want not-exist error, got %v", err)
	}
}

func TestMalformedGCS(t *testing.T) {
	var o Opener
	if _, err := o.Open(context.Background(), "gs://bucket-only"); err == nil {
		t.Errorf("Open: want error for malformed path")
	}
	if _, err := o.Create(context.Background(), "gs://"); err == nil {
		t.Errorf("Create: want error for malformed path")
	}
}

func TestContentType(t *testing.T) {
	for obj, want := range map[string]string{
		"a/Random.png": "image/png",
		"chart.SVG":    "image/svg+xml",
		"blob":         "application/octet-stream",
	} {
		if got := contentType(obj); got != want {
			t.Errorf("contentType(%q) = %q, want %q", obj, got, want)
		}
	}
}
