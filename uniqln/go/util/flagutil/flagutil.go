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

// Package flagutil is a collection of helper functions for uniqln binaries
// using the flag package.
package flagutil // import "uniqln.io/uniqln/go/util/flagutil"

import (
	"flag"
	"fmt"
	"strings"

	"uniqln.io/uniqln/go/util/build"
)

// SimpleUsage returns a basic usage function for fs that prints the given
// description and list of arguments in the following format:
//
//	Usage: <fs.Name()> <arg0> <arg1> ... <argN>
//	<description>
//
//	<build.VersionLine()>
//
//	Flags:
//	<fs.PrintDefaults()>
func SimpleUsage(fs *flag.FlagSet, description string, args ...string) func() {
	return func() {
		prefix := fmt.Sprintf("Usage: %s ", fs.Name())
		alignArgs(len(prefix), args)
		fmt.Fprintf(fs.Output(), `%s%s
%s

%s

Flags:
`, prefix, strings.Join(args, " "), description, build.VersionLine())
		fs.PrintDefaults()
	}
}

func alignArgs(col int, args []string) {
	s := strings.Repeat(" ", col)
	for i, arg := range args {
		args[i] = strings.ReplaceAll(arg, "\n", "\n"+s)
	}
}

// UsageError prints msg to the output of fs, followed by its usage, and
// returns code for the caller to exit with.
func UsageError(fs *flag.FlagSet, code int, msg string) int {
	fmt.Fprintln(fs.Output(), "E: "+msg)
	fs.Usage()
	return code
}

// UsageErrorf is UsageError with a formatted message.
func UsageErrorf(fs *flag.FlagSet, code int, str string, vals ...any) int {
	return UsageError(fs, code, fmt.Sprintf(str, vals...))
}
