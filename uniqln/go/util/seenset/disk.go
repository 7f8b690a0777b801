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

package seenset

import (
	"github.com/cockroachdb/pebble"
	"github.com/google/orderedcode"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// DefaultCacheCapacity is the block cache size of on-disk sets.
const DefaultCacheCapacity = 64 * 1024 * 1024 // 64mb

// diskKeys encodes set keys as orderedcode tuples of (namespace, key).
type diskKeys struct {
	prefix  []byte
	scratch []byte
}

func newDiskKeys(namespace string) (diskKeys, error) {
	prefix, err := orderedcode.Append(nil, namespace)
	if err != nil {
		return diskKeys{}, errors.Wrapf(err, "encoding namespace %q", namespace)
	}
	return diskKeys{prefix: prefix}, nil
}

// encode returns the on-disk key for key.  The result is valid until the next
// call to encode.
func (k *diskKeys) encode(key []byte) ([]byte, error) {
	buf, err := orderedcode.Append(append(k.scratch[:0], k.prefix...), string(key))
	if err != nil {
		return nil, errors.Wrap(err, "encoding key")
	}
	k.scratch = buf
	return buf, nil
}

// levelDBSet is a Set stored in a LevelDB database.
type levelDBSet struct {
	db   *leveldb.DB
	keys diskKeys
	size int

	writeOpts *opt.WriteOptions
}

// OpenLevelDB returns a Set backed by a LevelDB database in dir.  Keys are
// namespaced so that sets for different fingerprint methods may share a
// database.
func OpenLevelDB(dir, namespace string) (Set, error) {
	keys, err := newDiskKeys(namespace)
	if err != nil {
		return nil, err
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		BlockCacheCapacity: DefaultCacheCapacity,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not open LevelDB at %q", dir)
	}
	return &levelDBSet{db: db, keys: keys, writeOpts: &opt.WriteOptions{}}, nil
}

// Contains implements part of the Set interface.
func (s *levelDBSet) Contains(key []byte) (bool, error) {
	k, err := s.keys.encode(key)
	if err != nil {
		return false, err
	}
	ok, err := s.db.Has(k, nil)
	if err != nil {
		return false, errors.Wrap(err, "leveldb lookup")
	}
	return ok, nil
}

// Insert implements part of the Set interface.
func (s *levelDBSet) Insert(key []byte) error {
	k, err := s.keys.encode(key)
	if err != nil {
		return err
	}
	if err := s.db.Put(k, nil, s.writeOpts); err != nil {
		return errors.Wrap(err, "leveldb write")
	}
	s.size++
	return nil
}

// Len implements part of the Set interface.
func (s *levelDBSet) Len() int { return s.size }

// Close implements part of the Set interface.
func (s *levelDBSet) Close() error { return s.db.Close() }

// pebbleSet is a Set stored in a Pebble database.
type pebbleSet struct {
	db   *pebble.DB
	keys diskKeys
	size int
}

// OpenPebble returns a Set backed by a Pebble database in dir.  Keys are
// namespaced as in OpenLevelDB.
func OpenPebble(dir, namespace string) (Set, error) {
	keys, err := newDiskKeys(namespace)
	if err != nil {
		return nil, err
	}
	c := pebble.NewCache(DefaultCacheCapacity)
	defer c.Unref()

	db, err := pebble.Open(dir, &pebble.Options{Cache: c})
	if err != nil {
		return nil, errors.Wrapf(err, "could not open Pebble at %q", dir)
	}
	return &pebbleSet{db: db, keys: keys}, nil
}

// Contains implements part of the Set interface.
func (s *pebbleSet) Contains(key []byte) (bool, error) {
	k, err := s.keys.encode(key)
	if err != nil {
		return false, err
	}
	_, closer, err := s.db.Get(k)
	if err == pebble.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, errors.Wrap(err, "pebble lookup")
	}
	closer.Close()
	return true, nil
}

// Insert implements part of the Set interface.
func (s *pebbleSet) Insert(key []byte) error {
	k, err := s.keys.encode(key)
	if err != nil {
		return err
	}
	if err := s.db.Set(k, nil, pebble.NoSync); err != nil {
		return errors.Wrap(err, "pebble write")
	}
	s.size++
	return nil
}

// Len implements part of the Set interface.
func (s *pebbleSet) Len() int { return s.size }

// Close implements part of the Set interface.
func (s *pebbleSet) Close() error { return s.db.Close() }
