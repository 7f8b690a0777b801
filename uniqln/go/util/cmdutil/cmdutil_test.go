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

package cmdutil_test

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"uniqln.io/uniqln/go/util/cmdutil"

	"github.com/google/subcommands"
)

func ExampleNewInfo() {
	cmd := struct {
		cmdutil.Info
	}{
		Info: cmdutil.NewInfo("example", "Demonstrate how to set up a subcommand",
			`<file>`),
	}

	fs := flag.NewFlagSet("test", flag.ExitOnError)
	fs.Parse([]string{"example", "input.txt"})

	cmdr := subcommands.NewCommander(fs, "cmdutil_test")
	cmdr.Register(cmd, "examples")

	fmt.Println(cmdr.Execute(context.Background()))
	// Output:
	// example <file>
	// 0
}

func TestInputOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("a\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var in cmdutil.Input
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	in.RegisterFlags(fs)
	if err := fs.Parse([]string{"--input_compression=auto", path}); err != nil {
		t.Fatal(err)
	}
	got, rc, err := in.Open(fs)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != path || string(data) != "a\nb\n" {
		t.Errorf("Open = %q with %q", got, data)
	}
}

func TestInputOpenErrors(t *testing.T) {
	info := cmdutil.NewInfo("audit", "report collisions", "<file>")
	var in cmdutil.Input
	for _, args := range [][]string{nil, {"a", "b"}} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Parse(args)
		if _, _, err := in.Open(fs); err != cmdutil.ErrArgCount {
			t.Errorf("Open(%q) error = %v; want ErrArgCount", args, err)
		}
		if _, _, status := info.OpenInput(&in, fs); status != subcommands.ExitUsageError {
			t.Errorf("OpenInput(%q) = %v; want ExitUsageError", args, status)
		}
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Parse([]string{filepath.Join(t.TempDir(), "missing")})
	if _, _, err := in.Open(fs); err == nil || err == cmdutil.ErrArgCount {
		t.Errorf("Open(missing) error = %v", err)
	}
	if _, _, status := info.OpenInput(&in, fs); status != subcommands.ExitFailure {
		t.Errorf("OpenInput(missing) = %v; want ExitFailure", status)
	}
}

func TestUsage(t *testing.T) {
	info := cmdutil.NewInfo("audit", "report collisions", "<file>")
	if got, want := info.Usage(), "audit <file>\n\nOptions:\n"; got != want {
		t.Errorf("Usage() = %q; want %q", got, want)
	}
}
