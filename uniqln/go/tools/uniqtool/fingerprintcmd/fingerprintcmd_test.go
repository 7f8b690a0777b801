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

package fingerprintcmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"uniqln.io/uniqln/go/test/testutil"
	"uniqln.io/uniqln/go/util/fingerprint"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	testutil.Fatalf(t, "Write error: %v", Write(w, strings.NewReader("a\n\nAb\nBA"), fingerprint.Fast))
	testutil.Fatalf(t, "Flush error: %v", w.Flush())

	// 'Ab' and 'BA' share a fingerprint.
	want := "000000000002b606\ta\n" +
		"0000000000001505\t\n" +
		"0000000000597308\tAb\n" +
		"0000000000597308\tBA\n"
	if got := buf.String(); got != want {
		t.Errorf("Write output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteExact(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	testutil.Fatalf(t, "Write error: %v", Write(w, strings.NewReader("hi\n"), fingerprint.Exact))
	w.Flush()
	if got, want := buf.String(), "6869\thi\n"; got != want {
		t.Errorf("Write output = %q; want %q", got, want)
	}
}
