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

// Package chunk reads a byte stream through a fixed-capacity buffer and
// splits it into '\n'-terminated lines.
//
// Each Fill appends freshly read bytes after the bytes carried over from the
// previous iteration.  Lines handed out by Lines and Split are sub-slices of
// the buffer and are valid only until the next call to Fill.
package chunk // import "uniqln.io/uniqln/go/platform/chunk"

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"uniqln.io/uniqln/go/platform/fadvise"

	"github.com/pkg/errors"
)

// Terminator is the line terminator byte.
const Terminator = '\n'

// DefaultBufferSize is the default buffer capacity.
const DefaultBufferSize = 16 * 1024

// maxConsecutiveEmptyReads bounds the number of (0, nil) reads tolerated before
// giving up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// ErrLineTooLong is returned when a single line does not fit in the buffer and
// the overflow policy does not allow it to grow.
var ErrLineTooLong = errors.New("line exceeds buffer capacity")

// A ReadError reports a failure of the underlying reader.
type ReadError struct{ Err error }

// Error implements the error interface.
func (e *ReadError) Error() string { return "read failure: " + e.Err.Error() }

// Unwrap returns the underlying reader error.
func (e *ReadError) Unwrap() error { return e.Err }

// Overflow is the policy applied when the buffer is full and holds no
// terminator, i.e. a single line is longer than the buffer.
type Overflow int

// Overflow policies.
const (
	// Grow doubles the buffer, up to Options.MaxBufferSize if set.
	Grow Overflow = iota
	// Fail reports ErrLineTooLong.
	Fail
)

// String implements the fmt.Stringer interface.
func (o Overflow) String() string {
	switch o {
	case Grow:
		return "grow"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// Set implements part of the flag.Value interface.
func (o *Overflow) Set(s string) error {
	switch strings.ToLower(s) {
	case "grow", "":
		*o = Grow
	case "fail":
		*o = Fail
	default:
		return fmt.Errorf("unknown overflow policy: %q", s)
	}
	return nil
}

// Get implements part of the flag.Getter interface.
func (o *Overflow) Get() any { return *o }

// Options configures a Reader.
type Options struct {
	// BufferSize is the initial buffer capacity.  If non-positive,
	// DefaultBufferSize is used.
	BufferSize int

	// Overflow selects what happens to lines longer than the buffer.
	Overflow Overflow

	// MaxBufferSize caps buffer growth under the Grow policy.  If
	// non-positive, the buffer may grow without bound.
	MaxBufferSize int
}

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

// A Buffer is a byte region of fixed capacity whose first Len bytes hold
// valid data.
type Buffer struct {
	buf []byte
	n   int
}

// NewBuffer returns an empty Buffer of the given capacity.
func NewBuffer(capacity int) *Buffer { return &Buffer{buf: make([]byte, capacity)} }

// Cap returns the capacity of b.
func (b *Buffer) Cap() int { return len(b.buf) }

// Len returns the number of valid bytes in b.
func (b *Buffer) Len() int { return b.n }

// Valid returns the valid region of b.
func (b *Buffer) Valid() []byte { return b.buf[:b.n] }

// Full reports whether every byte of b is valid.
func (b *Buffer) Full() bool { return b.n == len(b.buf) }

// Carry moves the valid bytes from offset consumed onwards to the front of b,
// making them the only valid bytes.
func (b *Buffer) Carry(consumed int) {
	b.n = copy(b.buf, b.buf[consumed:b.n])
}

// resize changes the capacity of b, keeping its valid bytes.
func (b *Buffer) resize(capacity int) {
	buf := make([]byte, capacity)
	copy(buf, b.buf[:b.n])
	b.buf = buf
}

// free returns the unused space after the valid bytes of b.
func (b *Buffer) free() []byte { return b.buf[b.n:] }

// commit marks the next n free bytes of b as valid.
func (b *Buffer) commit(n int) { b.n += n }

// Split calls fn for each complete line in valid, in order, passing the line
// without its terminator.  It returns the offset just past the last
// terminator; valid[consumed:] is the unterminated tail.  If fn returns an
// error, Split stops and returns it.
func Split(valid []byte, fn func(line []byte) error) (consumed int, err error) {
	return splitFrom(valid, 0, fn)
}

// splitFrom is Split for a valid region whose first clean bytes are known to
// contain no terminator.
func splitFrom(valid []byte, clean int, fn func(line []byte) error) (int, error) {
	start, from := 0, clean
	for {
		i := bytes.IndexByte(valid[from:], Terminator)
		if i < 0 {
			return start, nil
		}
		end := from + i
		if err := fn(valid[start:end]); err != nil {
			return start, err
		}
		start = end + 1
		from = start
	}
}

// A Reader fills a Buffer from an io.Reader and hands out complete lines.
type Reader struct {
	r    io.Reader
	buf  *Buffer
	opts Options

	clean int     // leading valid bytes known to hold no terminator
	eof   bool    // the underlying reader reported io.EOF
	next  [1]byte // lookahead read when the buffer is full
}

// NewReader returns a Reader consuming r.  If opts == nil, the defaults are
// used.  If r is an open file, the kernel is advised that it will be read
// sequentially.
func NewReader(r io.Reader, opts *Options) *Reader {
	if f, ok := r.(fadvise.File); ok {
		fadvise.Sequential(f) // advisory; errors are ignored
	}
	rd := &Reader{r: r, buf: NewBuffer(opts.bufferSize())}
	if opts != nil {
		rd.opts = *opts
	}
	return rd
}

// Buffer returns the Reader's buffer.
func (r *Reader) Buffer() *Buffer { return r.buf }

// Fill reads more data after the carried-over bytes and returns the number of
// bytes read.  It returns io.EOF once the input is exhausted, a *ReadError if
// the underlying reader fails, and ErrLineTooLong if the buffer is full of a
// single line, more input follows, and the overflow policy cannot accommodate
// it.  A line filling the buffer exactly at the end of the input is not an
// overflow.
func (r *Reader) Fill() (int, error) {
	if r.eof {
		return 0, io.EOF
	}
	if !r.buf.Full() {
		n, err := r.read(r.buf.free())
		r.buf.commit(n)
		return n, err
	}

	n, err := r.read(r.next[:])
	if err != nil {
		return 0, err
	}
	if err := r.overflow(); err != nil {
		return 0, err
	}
	r.buf.commit(copy(r.buf.free(), r.next[:n]))
	return n, nil
}

// read makes Read calls into p until one makes progress or fails, giving up
// after maxConsecutiveEmptyReads empty reads.
func (r *Reader) read(p []byte) (int, error) {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.r.Read(p)
		if err == io.EOF {
			r.eof = true
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		} else if err != nil {
			return 0, &ReadError{err}
		} else if n > 0 {
			return n, nil
		}
	}
	return 0, &ReadError{io.ErrNoProgress}
}

func (r *Reader) overflow() error {
	size := r.buf.Cap()
	if r.opts.Overflow == Fail {
		return errors.Wrapf(ErrLineTooLong, "no terminator within %d bytes", size)
	}
	next := 2 * size
	if limit := r.opts.MaxBufferSize; limit > 0 {
		if size >= limit {
			return errors.Wrapf(ErrLineTooLong, "no terminator within %d bytes (maximum buffer size)", size)
		} else if next > limit {
			next = limit
		}
	}
	r.buf.resize(next)
	return nil
}

// Lines calls fn for each complete line currently in the buffer and then
// carries the unterminated tail over to the front of the buffer.  On error
// from fn, the buffer is left untouched.
func (r *Reader) Lines(fn func(line []byte) error) error {
	consumed, err := splitFrom(r.buf.Valid(), r.clean, fn)
	if err != nil {
		return err
	}
	r.buf.Carry(consumed)
	r.clean = r.buf.Len()
	return nil
}

// Tail returns the carried-over bytes: after a final Lines call following
// io.EOF, the unterminated last line of the input (possibly empty).
func (r *Reader) Tail() []byte { return r.buf.Valid() }
