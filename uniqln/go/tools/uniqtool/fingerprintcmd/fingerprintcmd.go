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

// Package fingerprintcmd provides the uniqtool command printing the
// fingerprint of every line of a file.
package fingerprintcmd

import (
	"bufio"
	"context"
	"encoding/hex"
	"flag"
	"io"
	"os"

	"uniqln.io/uniqln/go/platform/chunk"
	"uniqln.io/uniqln/go/util/cmdutil"
	"uniqln.io/uniqln/go/util/fingerprint"

	"github.com/google/subcommands"
)

type fingerprintCommand struct {
	cmdutil.Info
	input cmdutil.Input

	method fingerprint.Method
}

// New creates a new subcommand for printing line fingerprints.
func New() subcommands.Command {
	return &fingerprintCommand{
		Info: cmdutil.NewInfo("fingerprint", "print the fingerprint of every line", "[--fingerprint=fast] <file>"),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the fingerprint command.
func (c *fingerprintCommand) SetFlags(fs *flag.FlagSet) {
	fs.Var(&c.method, "fingerprint", "Key to print: fast, strict or exact")
	c.input.RegisterFlags(fs)
}

// Execute implements the subcommands interface and prints one
// "<hex key>\t<line>" row per input line.
func (c *fingerprintCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	_, in, status := c.OpenInput(&c.input, fs)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer in.Close()

	out := bufio.NewWriter(os.Stdout)
	if err := Write(out, in, c.method); err != nil {
		out.Flush()
		return c.Fail("%v", err)
	}
	if err := out.Flush(); err != nil {
		return c.Fail("writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// Write reads every line of r, including an unterminated last line, and writes
// its key under m in hex, a tab and the line itself to w.
func Write(w *bufio.Writer, r io.Reader, m fingerprint.Method) error {
	var key []byte
	row := func(line []byte) error {
		key = m.Key(key[:0], line)
		w.WriteString(hex.EncodeToString(key))
		w.WriteByte('\t')
		w.Write(line)
		return w.WriteByte(chunk.Terminator)
	}

	rd := chunk.NewReader(r, nil)
	for {
		if _, err := rd.Fill(); err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if err := rd.Lines(row); err != nil {
			return err
		}
	}
	if tail := rd.Tail(); len(tail) > 0 {
		return row(tail)
	}
	return nil
}
