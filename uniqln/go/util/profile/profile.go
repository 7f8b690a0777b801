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

// Package profile exposes CPU profiling through a --cpu_profile flag.
package profile // import "uniqln.io/uniqln/go/util/profile"

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"uniqln.io/uniqln/go/util/log"
)

var (
	profCPU string

	file *os.File
	mu   sync.Mutex
)

// RegisterFlags adds the --cpu_profile flag to fs.
func RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&profCPU, "cpu_profile", "", "Write CPU profile to the specified file (if nonempty)")
}

// Start begins profiling the program, writing data to the file given with the
// --cpu_profile flag.  If --cpu_profile was not given, nothing happens.  Start
// must not be called again until Stop is called.
func Start() error {
	mu.Lock()
	defer mu.Unlock()

	if profCPU == "" {
		return nil
	} else if file != nil {
		return errors.New("profiling already started")
	}
	f, err := os.Create(profCPU)
	if err != nil {
		return fmt.Errorf("error creating profile file %q: %v", profCPU, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("error starting CPU profile: %v", err)
	}
	file = f
	return nil
}

// Stop stops profiling the program.  If --cpu_profile was not given, nothing
// happens.
func Stop() error {
	mu.Lock()
	defer mu.Unlock()

	if profCPU == "" {
		return nil
	} else if file == nil {
		return errors.New("profiling hasn't started")
	}
	pprof.StopCPUProfile()
	err := file.Close()
	file = nil
	if err != nil {
		return err
	}
	log.Infof("Profile data written: go tool pprof %s %s", os.Args[0], profCPU)
	return nil
}
