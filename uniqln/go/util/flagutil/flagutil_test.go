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

package flagutil

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestUsageError(t *testing.T) {
	var buf bytes.Buffer
	fs := flag.NewFlagSet("uniqln", flag.ContinueOnError)
	fs.SetOutput(&buf)
	fs.Bool("stats", false, "Log line counts")
	fs.Usage = SimpleUsage(fs, "Print each distinct line once", "<file>")

	if code := UsageErrorf(fs, 7, "bad arg count: %d", 2); code != 7 {
		t.Errorf("UsageErrorf returned %d; want 7", code)
	}
	out := buf.String()
	for _, want := range []string{
		"E: bad arg count: 2\n",
		"Usage: uniqln <file>\n",
		"Print each distinct line once\n",
		"Version: ",
		"-stats",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output missing %q:\n%s", want, out)
		}
	}
}

func TestAlignArgs(t *testing.T) {
	args := []string{"a\nb"}
	alignArgs(3, args)
	if args[0] != "a\n   b" {
		t.Errorf("alignArgs = %q", args[0])
	}
}
