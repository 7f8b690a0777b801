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

// Package seenset implements the sets of line keys used to remember which
// lines have already been emitted.  Sets only grow; there is no removal.
package seenset // import "uniqln.io/uniqln/go/util/seenset"

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"uniqln.io/uniqln/go/util/fingerprint"

	"bitbucket.org/creachadair/stringset"
	"github.com/pkg/errors"
)

// A Set records keys of emitted lines.
type Set interface {
	// Contains reports whether key has been inserted.
	Contains(key []byte) (bool, error)

	// Insert adds key to the set.  Callers insert only keys Contains has
	// reported absent; on-disk sets do not look the key up again.
	Insert(key []byte) error

	// Len returns the number of keys inserted.
	Len() int

	// Close releases any resources held by the set.
	Close() error
}

// Fingerprints is an in-memory Set of 8-byte keys, as produced by
// fingerprint.Fast.  Keys of any other length are rejected.
type Fingerprints map[uint64]struct{}

// NewFingerprints returns an empty Fingerprints set.
func NewFingerprints() Fingerprints { return make(Fingerprints) }

func fingerprintOf(key []byte) (uint64, error) {
	if len(key) != 8 {
		return 0, fmt.Errorf("invalid fingerprint key length: %d", len(key))
	}
	return binary.BigEndian.Uint64(key), nil
}

// Contains implements part of the Set interface.
func (s Fingerprints) Contains(key []byte) (bool, error) {
	fp, err := fingerprintOf(key)
	if err != nil {
		return false, err
	}
	_, ok := s[fp]
	return ok, nil
}

// Insert implements part of the Set interface.
func (s Fingerprints) Insert(key []byte) error {
	fp, err := fingerprintOf(key)
	if err != nil {
		return err
	}
	s[fp] = struct{}{}
	return nil
}

// Len implements part of the Set interface.
func (s Fingerprints) Len() int { return len(s) }

// Close implements part of the Set interface.
func (Fingerprints) Close() error { return nil }

// Memory is an in-memory Set of arbitrary keys.
type Memory struct{ set stringset.Set }

// NewMemory returns an empty Memory set.
func NewMemory() *Memory { return &Memory{set: stringset.New()} }

// Contains implements part of the Set interface.
func (m *Memory) Contains(key []byte) (bool, error) { return m.set.Contains(string(key)), nil }

// Insert implements part of the Set interface.
func (m *Memory) Insert(key []byte) error {
	m.set.Add(string(key))
	return nil
}

// Len implements part of the Set interface.
func (m *Memory) Len() int { return m.set.Len() }

// Close implements part of the Set interface.
func (*Memory) Close() error { return nil }

// Store names a Set implementation.
type Store int

// Supported stores.
const (
	InMemory Store = iota
	LevelDB
	Pebble
)

// String implements the fmt.Stringer interface.
func (s Store) String() string {
	switch s {
	case InMemory:
		return "memory"
	case LevelDB:
		return "leveldb"
	case Pebble:
		return "pebble"
	default:
		return fmt.Sprintf("Store(%d)", int(s))
	}
}

// Set implements part of the flag.Value interface.
func (s *Store) Set(v string) error {
	switch strings.ToLower(v) {
	case "memory", "":
		*s = InMemory
	case "leveldb":
		*s = LevelDB
	case "pebble":
		*s = Pebble
	default:
		return fmt.Errorf("unknown seen-set store: %q", v)
	}
	return nil
}

// Get implements part of the flag.Getter interface.
func (s *Store) Get() any { return *s }

// Options configures Open.
type Options struct {
	// Store selects the Set implementation.
	Store Store

	// Method is the fingerprint method whose keys the Set will hold.  It picks
	// the in-memory representation and namespaces on-disk keys.
	Method fingerprint.Method

	// WorkDir is the parent directory of on-disk sets.  If empty, the default
	// directory for temporary files is used.
	WorkDir string
}

// Open returns a new empty Set as described by opts.  On-disk sets live in a
// fresh temporary directory that is removed by Close.
func Open(opts Options) (Set, error) {
	switch opts.Store {
	case InMemory:
		if opts.Method == fingerprint.Fast {
			return NewFingerprints(), nil
		}
		return NewMemory(), nil
	case LevelDB, Pebble:
		dir, err := os.MkdirTemp(opts.WorkDir, "uniqln-seen-")
		if err != nil {
			return nil, errors.Wrap(err, "creating seen-set directory")
		}
		var s Set
		if opts.Store == LevelDB {
			s, err = OpenLevelDB(dir, opts.Method.String())
		} else {
			s, err = OpenPebble(dir, opts.Method.String())
		}
		if err != nil {
			os.RemoveAll(dir)
			return nil, err
		}
		return &tempSet{Set: s, dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown seen-set store: %v", opts.Store)
	}
}

// tempSet removes its backing directory once closed.
type tempSet struct {
	Set
	dir string
}

// Close implements part of the Set interface.
func (t *tempSet) Close() error {
	err := t.Set.Close()
	if rerr := os.RemoveAll(t.dir); err == nil {
		err = rerr
	}
	return err
}
