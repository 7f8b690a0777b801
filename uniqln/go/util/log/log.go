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

// Package log provides semantic log functions for uniqln binaries.  All
// output goes to the standard logger, which writes to stderr.
package log // import "uniqln.io/uniqln/go/util/log"

import (
	"io"
	"log"
)

// Init configures the standard logger for a command-line binary: messages are
// prefixed with the program name and carry no timestamp.
func Init(prog string, w io.Writer) {
	log.SetFlags(0)
	log.SetPrefix(prog + ": ")
	if w != nil {
		log.SetOutput(w)
	}
}

// Infof logs to the informational log.
func Infof(msg string, args ...any) { log.Printf(msg, args...) }

// Warningf logs to the warning log.
func Warningf(msg string, args ...any) { log.Printf("WARNING: "+msg, args...) }

// Errorf logs to the error log.
func Errorf(msg string, args ...any) { log.Printf("E: "+msg, args...) }

