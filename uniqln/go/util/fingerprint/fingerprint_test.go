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

package fingerprint

import (
	"bytes"
	"encoding/binary"
	"flag"
	"testing"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 5381},
		{"a", 5381*33 + 'a'},
		{"ab", (5381*33+'a')*33 + 'b'},
		{"\xff", 5381*33 + 0xff},
	}
	for _, test := range tests {
		if got := Sum64([]byte(test.in)); got != test.want {
			t.Errorf("Sum64(%q) = %d; want %d", test.in, got, test.want)
		}
	}
}

func TestSum64Wraps(t *testing.T) {
	line := bytes.Repeat([]byte("z"), 1000)
	want := uint64(Seed)
	for range line {
		want = want*33 + 'z'
	}
	if got := Sum64(line); got != want {
		t.Errorf("Sum64(1000×z) = %d; want %d", got, want)
	}
}

func TestKey(t *testing.T) {
	line := []byte("hello")
	fast := Fast.Key(nil, line)
	if len(fast) != Fast.KeySize() {
		t.Fatalf("len(Fast.Key) = %d; want %d", len(fast), Fast.KeySize())
	}
	if got := binary.BigEndian.Uint64(fast); got != Sum64(line) {
		t.Errorf("Fast.Key decodes to %d; want %d", got, Sum64(line))
	}

	strict := Strict.Key([]byte("prefix"), line)
	if !bytes.HasPrefix(strict, []byte("prefix")) || len(strict) != len("prefix")+Strict.KeySize() {
		t.Errorf("Strict.Key did not append to dst: %x", strict)
	}
	if bytes.Equal(Strict.Key(nil, line), Strict.Key(nil, []byte("hellp"))) {
		t.Error("Strict keys of distinct lines are equal")
	}

	if got := Exact.Key(nil, line); !bytes.Equal(got, line) {
		t.Errorf("Exact.Key = %q; want %q", got, line)
	}
}

func TestFastCollision(t *testing.T) {
	// 'A'*33+'b' == 'B'*33+'A'
	a, b := []byte("Ab"), []byte("BA")
	if Sum64(a) != Sum64(b) {
		t.Fatalf("expected Sum64(%q) == Sum64(%q)", a, b)
	}
	if bytes.Equal(Strict.Key(nil, a), Strict.Key(nil, b)) {
		t.Errorf("Strict keys of %q and %q collide", a, b)
	}
}

func TestMethodFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var m Method
	fs.Var(&m, "fingerprint", "")
	if err := fs.Parse([]string{"--fingerprint=STRICT"}); err != nil {
		t.Fatal(err)
	}
	if m != Strict {
		t.Errorf("Method = %v; want strict", m)
	}
	if err := m.Set("md5"); err == nil {
		t.Error("Set(md5) succeeded unexpectedly")
	}
	if got := Exact.String(); got != "exact" {
		t.Errorf("Exact.String() = %q", got)
	}
}
