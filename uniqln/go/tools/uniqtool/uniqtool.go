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

// Binary uniqtool provides tools to inspect how uniqln treats a file.
//
// Examples:
//
//	# Print the fingerprint of every line.
//	uniqtool fingerprint input.txt
//
//	# Count lines the default fingerprint would wrongly drop.
//	uniqtool audit --format=json input.txt
package main

import (
	"context"
	"flag"
	"os"

	"uniqln.io/uniqln/go/tools/uniqtool/auditcmd"
	"uniqln.io/uniqln/go/tools/uniqtool/fingerprintcmd"
	"uniqln.io/uniqln/go/util/log"

	"github.com/google/subcommands"
)

func init() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(auditcmd.New(), "")
	subcommands.Register(fingerprintcmd.New(), "")
}

func main() {
	log.Init("uniqtool", os.Stderr)
	flag.Parse()
	ctx := context.Background()

	os.Exit(int(subcommands.Execute(ctx)))
}
