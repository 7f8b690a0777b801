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

// Package cmdutil exports shared logic for implementing command-line
// subcommands using the github.com/google/subcommands package.
package cmdutil // import "uniqln.io/uniqln/go/util/cmdutil"

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"uniqln.io/uniqln/go/platform/codec"
	"uniqln.io/uniqln/go/util/log"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

// Info supplies the naming and documentation methods of subcommands.Command
// along with helpers that log failures under the command's name.  Its
// SetFlags registers nothing and its Execute prints the usage line.
type Info struct {
	name, synopsis string
	usage          string // "<name> <arguments>\n"
}

// NewInfo returns the Info of command name, whose arguments are described by
// args (e.g. "[--format=yaml|json] <file>").
func NewInfo(name, synopsis, args string) Info {
	return Info{
		name:     name,
		synopsis: synopsis,
		usage:    name + " " + strings.TrimSuffix(args, "\n") + "\n",
	}
}

// Name implements part of subcommands.Command.
func (i Info) Name() string { return i.name }

// Synopsis implements part of subcommands.Command.
func (i Info) Synopsis() string { return i.synopsis }

// Usage implements part of subcommands.Command.  subcommands prints the
// command's flags after it.
func (i Info) Usage() string { return i.usage + "\nOptions:\n" }

// SetFlags implements part of subcommands.Command.
func (Info) SetFlags(*flag.FlagSet) {}

// Execute implements part of subcommands.Command by printing the usage line.
func (i Info) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	fmt.Print(i.usage)
	return subcommands.ExitSuccess
}

// Fail logs "<name>: <msg>" as an error and returns subcommands.ExitFailure.
func (i Info) Fail(msg string, args ...any) subcommands.ExitStatus {
	log.Errorf("%s: %s", i.name, fmt.Sprintf(msg, args...))
	return subcommands.ExitFailure
}

// UsageError is Fail for invalid invocations; it returns
// subcommands.ExitUsageError.
func (i Info) UsageError(msg string, args ...any) subcommands.ExitStatus {
	log.Errorf("%s: %s", i.name, fmt.Sprintf(msg, args...))
	return subcommands.ExitUsageError
}

// ErrArgCount is returned by Input.Open unless there is exactly one
// positional argument.
var ErrArgCount = errors.New("expected exactly one input file")

// Input is the single, possibly compressed, file a command reads.  Commands
// embed it, call RegisterFlags from SetFlags and Open from Execute.
type Input struct {
	Compression codec.Compression
}

// RegisterFlags adds the --input_compression flag to fs.
func (in *Input) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&in.Compression, "input_compression", "Input encoding: none, auto, snappy, zstd or brotli")
}

// Open opens the only positional argument of fs and returns its path and
// decoded contents.
func (in *Input) Open(fs *flag.FlagSet) (string, io.ReadCloser, error) {
	if fs.NArg() != 1 {
		return "", nil, ErrArgCount
	}
	path := fs.Arg(0)
	rc, err := codec.Open(path, in.Compression)
	if err != nil {
		return path, nil, errors.Wrap(err, "could not open file")
	}
	return path, rc, nil
}

// OpenInput opens in for the command, logging failures.  A usage error is
// reported for a wrong argument count.
func (i Info) OpenInput(in *Input, fs *flag.FlagSet) (string, io.ReadCloser, subcommands.ExitStatus) {
	path, rc, err := in.Open(fs)
	if err == ErrArgCount {
		return path, nil, i.UsageError("%v", err)
	} else if err != nil {
		return path, nil, i.Fail("%v", err)
	}
	return path, rc, subcommands.ExitSuccess
}
