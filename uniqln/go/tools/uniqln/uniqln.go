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

// Binary uniqln prints each distinct line of a file once, in order of first
// occurrence, without holding the file in memory.
//
// By default lines are compared by a 64-bit fingerprint: two different lines
// that share a fingerprint are treated as duplicates and the later one is
// silently dropped.  Use --fingerprint=strict or --fingerprint=exact when
// exact results matter.
//
// Exit codes: 0 success or help, 1 usage error, 2 open failure, 3 read
// failure, 4 line longer than the buffer allows, 5 write failure, 6 any other
// failure.
//
// Examples:
//
//	uniqln access.log > unique.log
//	uniqln --fingerprint=strict --seen_store=leveldb huge.txt > out.txt
//	uniqln --input_compression=auto lines.zst
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"uniqln.io/uniqln/go/platform/chunk"
	"uniqln.io/uniqln/go/platform/codec"
	"uniqln.io/uniqln/go/platform/uniq"
	"uniqln.io/uniqln/go/util/datasize"
	"uniqln.io/uniqln/go/util/dedup"
	"uniqln.io/uniqln/go/util/fingerprint"
	"uniqln.io/uniqln/go/util/flagutil"
	"uniqln.io/uniqln/go/util/log"
	"uniqln.io/uniqln/go/util/profile"
	"uniqln.io/uniqln/go/util/seenset"

	"github.com/hashicorp/go-multierror"
)

// Process exit codes.
const (
	exitOK = iota
	exitUsage
	exitOpen
	exitRead
	exitLineTooLong
	exitWrite
	exitFailure
)

const description = `Print each distinct line of <file> once, in order of first occurrence.
Lines are compared by fingerprint; with --fingerprint=fast (the default),
distinct lines sharing a fingerprint are dropped as duplicates.`

type config struct {
	bufferSize    datasize.Size
	maxBufferSize datasize.Size
	overflow      chunk.Overflow
	method        fingerprint.Method
	store         seenset.Store
	workDir       string
	compression   codec.Compression
	stats         bool
}

func (c *config) register(fs *flag.FlagSet) {
	datasize.FlagVar(fs, &c.bufferSize, "buffer_size", chunk.DefaultBufferSize, "Initial read buffer capacity")
	datasize.FlagVar(fs, &c.maxBufferSize, "max_buffer_size", 0, "Largest the buffer may grow to hold one line with --overflow=grow (0 for unbounded)")
	fs.Var(&c.overflow, "overflow", "What to do with a line longer than the buffer: grow or fail")
	fs.Var(&c.method, "fingerprint", "How lines are compared: fast (64-bit hash), strict (128-bit hash) or exact (full line)")
	fs.Var(&c.store, "seen_store", "Where seen lines are recorded: memory, leveldb or pebble")
	fs.StringVar(&c.workDir, "work_dir", "", "Parent directory for on-disk seen stores (default: the temporary directory)")
	fs.Var(&c.compression, "input_compression", "Input encoding: none, auto, snappy, zstd or brotli")
	fs.BoolVar(&c.stats, "stats", false, "Log unique and duplicate line counts on exit")
	profile.RegisterFlags(fs)
}

func (c *config) chunkOptions() (*chunk.Options, error) {
	size, err := c.bufferSize.Int()
	if err != nil {
		return nil, err
	} else if size <= 0 {
		return nil, errors.New("--buffer_size must be positive")
	}
	limit, err := c.maxBufferSize.Int()
	if err != nil {
		return nil, err
	} else if limit > 0 && limit < size {
		return nil, errors.New("--max_buffer_size must not be below --buffer_size")
	}
	return &chunk.Options{BufferSize: size, Overflow: c.overflow, MaxBufferSize: limit}, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.Init("uniqln", stderr)
	fs := flag.NewFlagSet("uniqln", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = flagutil.SimpleUsage(fs, description, "<file>")

	var cfg config
	cfg.register(fs)
	if err := fs.Parse(args); err == flag.ErrHelp {
		return exitOK
	} else if err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		return flagutil.UsageErrorf(fs, exitUsage, "bad arg count: %d", fs.NArg())
	}
	opts, err := cfg.chunkOptions()
	if err != nil {
		return flagutil.UsageError(fs, exitUsage, err.Error())
	}

	if err := profile.Start(); err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	code := dedupFile(fs.Arg(0), &cfg, opts, stdout)
	if err := profile.Stop(); err != nil {
		log.Warningf("%v", err)
	}
	return code
}

func dedupFile(path string, cfg *config, opts *chunk.Options, stdout io.Writer) int {
	input, err := codec.Open(path, cfg.compression)
	if err != nil {
		log.Errorf("could not open file: %v", err)
		return exitOpen
	}
	set, err := seenset.Open(seenset.Options{Store: cfg.store, Method: cfg.method, WorkDir: cfg.workDir})
	if err != nil {
		input.Close()
		log.Errorf("could not create seen store: %v", err)
		return exitFailure
	}

	f := uniq.New(dedup.New(cfg.method, set), opts)
	runErr := f.Run(input, stdout)

	var cleanup *multierror.Error
	if err := input.Close(); err != nil {
		cleanup = multierror.Append(cleanup, err)
	}
	if err := set.Close(); err != nil {
		cleanup = multierror.Append(cleanup, err)
	}

	if cfg.stats {
		log.Infof("%d unique lines, %d duplicates skipped (%s)", f.Unique(), f.Duplicates(), f.State())
	}
	if runErr != nil {
		log.Errorf("%v", runErr)
		if err := cleanup.ErrorOrNil(); err != nil {
			log.Warningf("cleanup: %v", err)
		}
		return exitCode(runErr)
	}
	if err := cleanup.ErrorOrNil(); err != nil {
		log.Errorf("cleanup: %v", err)
		return exitFailure
	}
	return exitOK
}

// exitCode classifies a failed run.
func exitCode(err error) int {
	var (
		rerr *chunk.ReadError
		werr *uniq.WriteError
	)
	switch {
	case errors.As(err, &rerr):
		return exitRead
	case errors.Is(err, chunk.ErrLineTooLong):
		return exitLineTooLong
	case errors.As(err, &werr):
		return exitWrite
	default:
		return exitFailure
	}
}
