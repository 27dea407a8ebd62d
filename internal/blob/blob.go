// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blob opens measurement inputs and chart outputs that live
// either on the local file system or in Google Cloud Storage.
//
// Paths of the form gs://bucket/object name GCS objects. The path "-"
// names standard input. Anything else is a local file.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// Stdin is the path that names standard input.
const Stdin = "-"

// An Opener opens and creates blobs. The zero Opener uses application
// default credentials for GCS.
type Opener struct {
	// CredentialsFile, if set, is a service account key file used
	// for GCS access instead of the default credentials.
	CredentialsFile string

	client *storage.Client
}

// IsGCS reports whether p names a GCS object.
func IsGCS(p string) bool {
	return strings.HasPrefix(p, gcsScheme)
}

// ParseGCS splits a gs://bucket/object path. ok is false if p is not
// a well-formed GCS path.
func ParseGCS(p string) (bucket, object string, ok bool) {
	if !IsGCS(p) {
		return "", "", false
	}
	bucket, object, _ = strings.Cut(strings.TrimPrefix(p, gcsScheme), "/")
	if bucket == "" || object == "" {
		return "", "", false
	}
	return bucket, object, true
}

// BaseName returns the last element of p without its extension, so
// both "data/Random.txt" and "gs://b/runs/Random.txt" give "Random".
// Standard input is named "stdin".
func BaseName(p string) string {
	if p == Stdin {
		return "stdin"
	}
	var base string
	if IsGCS(p) {
		base = path.Base(p)
	} else {
		base = filepath.Base(p)
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

func (o *Opener) gcs(ctx context.Context) (*storage.Client, error) {
	if o.client != nil {
		return o.client, nil
	}
	var opt option.ClientOption
	if o.CredentialsFile != "" {
		opt = option.WithCredentialsFile(o.CredentialsFile)
	} else {
		ts, err := google.DefaultTokenSource(ctx, storage.ScopeReadWrite)
		if err != nil {
			return nil, fmt.Errorf("finding GCS credentials: %w", err)
		}
		opt = option.WithTokenSource(ts)
	}
	client, err := storage.NewClient(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}
	o.client = client
	return client, nil
}

// Open opens p for reading.
func (o *Opener) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if p == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	if !IsGCS(p) {
		return os.Open(p)
	}
	bucket, object, ok := ParseGCS(p)
	if !ok {
		return nil, fmt.Errorf("malformed GCS path %q (want gs://bucket/object)", p)
	}
	client, err := o.gcs(ctx)
	if err != nil {
		return nil, err
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return r, nil
}

// Create creates or truncates p for writing. For GCS objects, the
// object is only written when the returned writer is closed, and the
// error from Close must be checked.
func (o *Opener) Create(ctx context.Context, p string) (io.WriteCloser, error) {
	if !IsGCS(p) {
		return os.Create(p)
	}
	bucket, object, ok := ParseGCS(p)
	if !ok {
		return nil, fmt.Errorf("malformed GCS path %q (want gs://bucket/object)", p)
	}
	client, err := o.gcs(ctx)
	if err != nil {
		return nil, err
	}
	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType(object)
	return w, nil
}

// Close releases the GCS client, if one was created.
func (o *Opener) Close() error {
	if o.client == nil {
		return nil
	}
	err := o.client.Close()
	o.client = nil
	return err
}

var contentTypes = map[string]string{
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".eps":  "application/postscript",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".txt":  "text/plain; charset=utf-8",
	".csv":  "text/csv",
}

func contentType(object string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(object))]; ok {
		return ct
	}
	return "application/octet-stream"
}
