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

package auditcmd

import (
	"bytes"
	"strings"
	"testing"

	"uniqln.io/uniqln/go/platform/chunk"
	"uniqln.io/uniqln/go/test/testutil"
)

func TestAudit(t *testing.T) {
	tests := []struct {
		in   string
		want Report
	}{
		{"", Report{}},
		{"a\nb\na\n", Report{Lines: 3, Unique: 2, Duplicates: 1, TrailingTerminator: true}},
		{"a\nb\na", Report{Lines: 3, Unique: 2, Duplicates: 1}},
		// 'A'*33+'b' == 'B'*33+'A'
		{"Ab\nBA\nAb\nBA\n", Report{Lines: 4, Unique: 2, Duplicates: 2, CollisionDrops: 1, TrailingTerminator: true}},
		{"Ab\nBA", Report{Lines: 2, Unique: 2, CollisionDrops: 1}},
	}
	for _, test := range tests {
		for _, size := range []int{2, chunk.DefaultBufferSize} {
			rep, err := Audit(strings.NewReader(test.in), &chunk.Options{BufferSize: size})
			testutil.Fatalf(t, "Audit error: %v", err)
			if err := testutil.DeepEqual(&test.want, rep); err != nil {
				t.Errorf("Audit(%q) size=%d: %v", test.in, size, err)
			}
		}
	}
}

func TestWriteReport(t *testing.T) {
	rep := &Report{Path: "in.txt", Lines: 3, Unique: 2, Duplicates: 1, TrailingTerminator: true}

	var buf bytes.Buffer
	testutil.Fatalf(t, "WriteReport error: %v", WriteReport(&buf, rep, "yaml"))
	want := []byte(`
path: in.txt
lines: 3
unique: 2
duplicates: 1
collision_drops: 0
trailing_terminator: true
`)
	if err := testutil.YAMLEqual(want, buf.Bytes()); err != nil {
		t.Errorf("yaml report: %v", err)
	}

	buf.Reset()
	testutil.Fatalf(t, "WriteReport error: %v", WriteReport(&buf, rep, "json"))
	if !strings.Contains(buf.String(), `"collision_drops": 0`) {
		t.Errorf("json report missing collision_drops:\n%s", buf.String())
	}

	if err := WriteReport(&buf, rep, "xml"); err == nil {
		t.Error("WriteReport(xml) succeeded unexpectedly")
	}
}
