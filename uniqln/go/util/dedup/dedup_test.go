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

package dedup

import (
	"testing"

	"uniqln.io/uniqln/go/test/testutil"
	"uniqln.io/uniqln/go/util/fingerprint"
	"uniqln.io/uniqln/go/util/seenset"
)

func TestIsUnique(t *testing.T) {
	d := New(fingerprint.Fast, seenset.NewFingerprints())

	tests := []struct {
		val  string
		uniq bool
	}{
		{"a", true},
		{"a", false},
		{"a", false},
		{"b", true},
		{"a", false},
		{"b", false},
		{"c", true},
		{"", true},
		{"", false},
		// Fast fingerprints collide: 'A'*33+'b' == 'B'*33+'A'
		{"Ab", true},
		{"BA", false},
	}

	var unique, duplicates uint64
	for _, test := range tests {
		uniq, err := d.IsUnique([]byte(test.val))
		testutil.Fatalf(t, "IsUnique error: %v", err)
		if uniq != test.uniq {
			t.Fatalf("Expected IsUnique(%q) to be %v; found %v", test.val, test.uniq, uniq)
		}
		if uniq {
			unique++
		} else {
			duplicates++
		}
		if found := d.Unique(); unique != found {
			t.Fatalf("Expected Unique() == %d; found %d", unique, found)
		}
		if found := d.Duplicates(); duplicates != found {
			t.Fatalf("Expected Duplicates() == %d; found %d", duplicates, found)
		}
	}
}

func TestStrictKeepsCollisions(t *testing.T) {
	for _, m := range []fingerprint.Method{fingerprint.Strict, fingerprint.Exact} {
		d := New(m, seenset.NewMemory())
		for _, val := range []string{"Ab", "BA"} {
			uniq, err := d.IsUnique([]byte(val))
			testutil.Fatalf(t, "IsUnique error: %v", err)
			if !uniq {
				t.Errorf("%v: IsUnique(%q) = false; want true", m, val)
			}
		}
	}
}

func TestSeenDoesNotRecord(t *testing.T) {
	d := New(fingerprint.Fast, seenset.NewFingerprints())
	for i := 0; i < 2; i++ {
		seen, err := d.Seen([]byte("tail"))
		testutil.Fatalf(t, "Seen error: %v", err)
		if seen {
			t.Fatalf("Seen(tail) = true on call %d", i)
		}
	}
	if d.Unique() != 0 || d.Duplicates() != 0 {
		t.Errorf("Seen changed counters: unique=%d duplicates=%d", d.Unique(), d.Duplicates())
	}
	d.Count(false)
	if d.Unique() != 1 {
		t.Errorf("Count(false) left Unique() = %d", d.Unique())
	}
}

func TestNilDeduper(t *testing.T) {
	var d *Deduper
	if d.Unique() != 0 || d.Duplicates() != 0 {
		t.Error("nil Deduper reported non-zero counts")
	}
}

// countingSet records the calls made to a Set.
type countingSet struct {
	seenset.Set
	contains, inserts int
}

func (s *countingSet) Contains(key []byte) (bool, error) {
	s.contains++
	return s.Set.Contains(key)
}

func (s *countingSet) Insert(key []byte) error {
	s.inserts++
	return s.Set.Insert(key)
}

func TestIsUniqueLooksUpOnce(t *testing.T) {
	s := &countingSet{Set: seenset.NewFingerprints()}
	d := New(fingerprint.Fast, s)
	for _, val := range []string{"a", "b", "a", "c", "b"} {
		_, err := d.IsUnique([]byte(val))
		testutil.Fatalf(t, "IsUnique error: %v", err)
	}
	if s.contains != 5 || s.inserts != 3 {
		t.Errorf("Contains called %d times, Insert %d times; want 5 and 3", s.contains, s.inserts)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d; want 3", s.Len())
	}
}
