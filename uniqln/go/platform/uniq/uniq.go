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

// Package uniq copies the distinct lines of a stream to an output, in order of
// first occurrence, reading the input once through a bounded buffer.
//
// Only a key per distinct line is retained.  With the default
// fingerprint.Fast keys, a line whose fingerprint collides with an earlier,
// different line is dropped as if it were a duplicate.
package uniq // import "uniqln.io/uniqln/go/platform/uniq"

import (
	"bufio"
	"fmt"
	"io"

	"uniqln.io/uniqln/go/platform/chunk"
	"uniqln.io/uniqln/go/util/dedup"

	"github.com/pkg/errors"
)

// State is a stage of a Filter run.
type State int

// Filter states, in the order a successful run passes through them.  Failed
// is reached from Reading instead of the remaining stages.
const (
	Start State = iota
	Reading
	EOFReached
	FinalTailCheck
	Done
	Failed
)

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case Start:
		return "START"
	case Reading:
		return "READING"
	case EOFReached:
		return "EOF_REACHED"
	case FinalTailCheck:
		return "FINAL_TAIL_CHECK"
	case Done:
		return "DONE"
	case Failed:
		return "FAILED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// A WriteError reports a failure to write the output.
type WriteError struct{ Err error }

// Error implements the error interface.
func (e *WriteError) Error() string { return "write failure: " + e.Err.Error() }

// Unwrap returns the underlying writer error.
func (e *WriteError) Unwrap() error { return e.Err }

// A Filter removes duplicate lines from a stream.
type Filter struct {
	d     *dedup.Deduper
	opts  chunk.Options
	state State

	out *bufio.Writer
}

// New returns a Filter that records lines in d.  If opts == nil, the default
// chunk.Options are used.
func New(d *dedup.Deduper, opts *chunk.Options) *Filter {
	f := &Filter{d: d}
	if opts != nil {
		f.opts = *opts
	}
	return f
}

// State returns the stage the Filter has reached.
func (f *Filter) State() State { return f.state }

// Unique returns the number of lines written so far.
func (f *Filter) Unique() uint64 { return f.d.Unique() }

// Duplicates returns the number of lines dropped so far.
func (f *Filter) Duplicates() uint64 { return f.d.Duplicates() }

// Run reads r to its end and writes every line not seen before to w, each
// followed by a terminator.  If r does not end with a terminator, its last
// line is written without one (when it is new).  On failure, output written
// before the failure is flushed to w and kept.
func (f *Filter) Run(r io.Reader, w io.Writer) error {
	f.state = Reading
	f.out = bufio.NewWriter(w)
	err := f.run(chunk.NewReader(r, &f.opts))
	if ferr := f.out.Flush(); err == nil && ferr != nil {
		err = &WriteError{ferr}
	}
	if err != nil {
		f.state = Failed
		return err
	}
	f.state = Done
	return nil
}

func (f *Filter) run(rd *chunk.Reader) error {
	for {
		if _, err := rd.Fill(); err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if err := rd.Lines(f.emit); err != nil {
			return err
		}
	}
	f.state = EOFReached

	tail := rd.Tail()
	if len(tail) == 0 {
		return nil
	}
	f.state = FinalTailCheck
	// Nothing follows the tail, so it need not be recorded.
	seen, err := f.d.Seen(tail)
	if err != nil {
		return errors.Wrap(err, "seen-set lookup")
	}
	f.d.Count(seen)
	if !seen {
		if _, err := f.out.Write(tail); err != nil {
			return &WriteError{err}
		}
	}
	return nil
}

func (f *Filter) emit(line []byte) error {
	uniq, err := f.d.IsUnique(line)
	if err != nil {
		return errors.Wrap(err, "seen-set lookup")
	} else if !uniq {
		return nil
	}
	if _, err := f.out.Write(line); err != nil {
		return &WriteError{err}
	}
	if err := f.out.WriteByte(chunk.Terminator); err != nil {
		return &WriteError{err}
	}
	return nil
}
