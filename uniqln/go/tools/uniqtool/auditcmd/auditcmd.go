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

// Package auditcmd provides the uniqtool command measuring how many lines the
// fast fingerprint would drop because of collisions.
package auditcmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"uniqln.io/uniqln/go/platform/chunk"
	"uniqln.io/uniqln/go/util/cmdutil"
	"uniqln.io/uniqln/go/util/dedup"
	"uniqln.io/uniqln/go/util/fingerprint"
	"uniqln.io/uniqln/go/util/seenset"

	"github.com/google/subcommands"
	"sigs.k8s.io/yaml"
)

// Report summarizes the lines of one input.
type Report struct {
	Path string `json:"path,omitempty"`

	// Lines is the total number of lines, counting an unterminated last line.
	Lines uint64 `json:"lines"`
	// Unique and Duplicates count lines by exact content.
	Unique     uint64 `json:"unique"`
	Duplicates uint64 `json:"duplicates"`
	// CollisionDrops counts distinct lines the fast fingerprint treats as
	// duplicates of an earlier, different line.
	CollisionDrops uint64 `json:"collision_drops"`
	// TrailingTerminator reports whether the input ends with a terminator.
	TrailingTerminator bool `json:"trailing_terminator"`
}

// Audit reads every line of r, comparing fast fingerprints against exact
// content.  The exact comparison retains every distinct line in memory.
func Audit(r io.Reader, opts *chunk.Options) (*Report, error) {
	fast := dedup.New(fingerprint.Fast, seenset.NewFingerprints())
	exact := dedup.New(fingerprint.Exact, seenset.NewMemory())
	rep := &Report{TrailingTerminator: true}

	check := func(line []byte, record bool) error {
		var fastNew, exactNew, seen bool
		var err error
		if record {
			if fastNew, err = fast.IsUnique(line); err != nil {
				return err
			}
			if exactNew, err = exact.IsUnique(line); err != nil {
				return err
			}
		} else {
			if seen, err = fast.Seen(line); err != nil {
				return err
			}
			fastNew = !seen
			if seen, err = exact.Seen(line); err != nil {
				return err
			}
			exact.Count(seen)
			exactNew = !seen
		}
		rep.Lines++
		if exactNew && !fastNew {
			rep.CollisionDrops++
		}
		return nil
	}

	rd := chunk.NewReader(r, opts)
	for {
		if _, err := rd.Fill(); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err := rd.Lines(func(line []byte) error { return check(line, true) }); err != nil {
			return nil, err
		}
	}
	if tail := rd.Tail(); len(tail) > 0 {
		rep.TrailingTerminator = false
		if err := check(tail, false); err != nil {
			return nil, err
		}
	}
	rep.Unique, rep.Duplicates = exact.Unique(), exact.Duplicates()
	if rep.Lines == 0 {
		rep.TrailingTerminator = false
	}
	return rep, nil
}

type auditCommand struct {
	cmdutil.Info
	input cmdutil.Input

	format string
}

// New creates a new subcommand for auditing fingerprint collisions.
func New() subcommands.Command {
	return &auditCommand{
		Info: cmdutil.NewInfo("audit", "count lines lost to fingerprint collisions", "[--format=yaml|json] <file>"),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the audit command.
func (c *auditCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "yaml", "Report format: yaml or json")
	c.input.RegisterFlags(fs)
}

// Execute implements the subcommands interface and prints a Report.
func (c *auditCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.format != "yaml" && c.format != "json" {
		return c.UsageError("unknown --format %q", c.format)
	}
	path, in, status := c.OpenInput(&c.input, fs)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer in.Close()

	rep, err := Audit(in, nil)
	if err != nil {
		return c.Fail("%v", err)
	}
	rep.Path = path
	if err := WriteReport(os.Stdout, rep, c.format); err != nil {
		return c.Fail("writing report: %v", err)
	}
	return subcommands.ExitSuccess
}

// WriteReport encodes rep to w as "yaml" or "json".
func WriteReport(w io.Writer, rep *Report, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml":
		out, err = yaml.Marshal(rep)
	case "json":
		out, err = json.MarshalIndent(rep, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown report format: %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
