/*
 * Copyright 2026 The uniqln Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package codec decodes compressed input streams.
package codec // import "uniqln.io/uniqln/go/platform/codec"

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"uniqln.io/uniqln/go/platform/fadvise"

	"github.com/DataDog/zstd"
	"github.com/golang/snappy"
	"github.com/google/brotli/go/cbrotli"
	"github.com/hashicorp/go-multierror"
)

// Compression names an input encoding.
type Compression int

// Supported compressions.
const (
	None Compression = iota
	// Auto selects a compression from the input's file extension.
	Auto
	Snappy
	Zstd
	Brotli
)

// String implements the fmt.Stringer interface.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Auto:
		return "auto"
	case Snappy:
		return "snappy"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Set implements part of the flag.Value interface.
func (c *Compression) Set(s string) error {
	switch strings.ToLower(s) {
	case "none", "":
		*c = None
	case "auto":
		*c = Auto
	case "snappy":
		*c = Snappy
	case "zstd":
		*c = Zstd
	case "brotli":
		*c = Brotli
	default:
		return fmt.Errorf("unknown compression: %q", s)
	}
	return nil
}

// Get implements part of the flag.Getter interface.
func (c *Compression) Get() any { return *c }

// Detect returns the compression implied by the extension of path.
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz", ".snappy":
		return Snappy
	case ".zst", ".zstd":
		return Zstd
	case ".br":
		return Brotli
	default:
		return None
	}
}

// Resolve returns c, or the compression detected from path if c is Auto.
func (c Compression) Resolve(path string) Compression {
	if c == Auto {
		return Detect(path)
	}
	return c
}

// NewReader returns a reader decoding r according to c, which must not be
// Auto.  Closing the returned reader releases the decoder but does not close
// r.  If r is an open file, the kernel is advised that it will be read
// sequentially.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	if c != None {
		if f, ok := r.(fadvise.File); ok {
			fadvise.Sequential(f) // advisory; errors are ignored
		}
	}
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case Zstd:
		return zstd.NewReader(r), nil
	case Brotli:
		return cbrotli.NewReader(r), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

// Open opens the file at path read-only and returns a reader decoding it
// according to c, resolving Auto from the path.  Closing the returned reader
// closes both the decoder and the file.  Opening a directory fails.
func Open(path string, c Compression) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if fi, err := f.Stat(); err != nil {
		f.Close()
		return nil, err
	} else if fi.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
	}
	c = c.Resolve(path)
	if c == None {
		// Hand out the file itself so readers can advise on it.
		return f, nil
	}
	rd, err := NewReader(f, c)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: rd, f: f}, nil
}

// fileReader is a decoder that owns its underlying file.
type fileReader struct {
	io.ReadCloser
	f *os.File
}

// Close implements the io.Closer interface.
func (r *fileReader) Close() error {
	var errs *multierror.Error
	if err := r.ReadCloser.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("closing decoder: %v", err))
	}
	if err := r.f.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("closing %s: %v", r.f.Name(), err))
	}
	return errs.ErrorOrNil()
}
