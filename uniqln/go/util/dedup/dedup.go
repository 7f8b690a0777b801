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

// Package dedup implements a utility to determine if a line has not been seen
// before (whether it's unique).
package dedup // import "uniqln.io/uniqln/go/util/dedup"

import (
	"uniqln.io/uniqln/go/util/fingerprint"
	"uniqln.io/uniqln/go/util/seenset"
)

// Deduper determines if a line has been seen before by checking its set of
// line keys.  With fingerprint.Fast, distinct lines sharing a fingerprint are
// reported as duplicates.
type Deduper struct {
	method fingerprint.Method
	set    seenset.Set
	key    []byte // scratch space for the current line's key

	duplicates, unique uint64
}

// New returns a new Deduper keying lines with m and remembering them in set.
func New(m fingerprint.Method, set seenset.Set) *Deduper {
	return &Deduper{method: m, set: set}
}

// Unique returns the number of unique lines seen so far.
func (d *Deduper) Unique() uint64 {
	if d == nil {
		return 0
	}
	return d.unique
}

// Duplicates returns the number of duplicate lines seen so far.
func (d *Deduper) Duplicates() uint64 {
	if d == nil {
		return 0
	}
	return d.duplicates
}

// Method returns the fingerprint method used by d.
func (d *Deduper) Method() fingerprint.Method { return d.method }

// Seen reports whether line has been recorded, without recording it.
func (d *Deduper) Seen(line []byte) (bool, error) {
	d.key = d.method.Key(d.key[:0], line)
	return d.set.Contains(d.key)
}

// IsUnique determines if the given line has not been seen before, recording it
// if so.
func (d *Deduper) IsUnique(line []byte) (bool, error) {
	seen, err := d.Seen(line)
	if err != nil {
		return false, err
	} else if seen {
		d.duplicates++
		return false, nil
	}
	if err := d.set.Insert(d.key); err != nil {
		return false, err
	}
	d.unique++
	return true, nil
}

// Count records the outcome of a lookup made with Seen.
func (d *Deduper) Count(seen bool) {
	if seen {
		d.duplicates++
	} else {
		d.unique++
	}
}
