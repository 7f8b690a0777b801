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

// Package fadvise passes access-pattern hints for open files to the kernel.
// Hints are advisory; platforms without support ignore them.
package fadvise // import "uniqln.io/uniqln/go/platform/fadvise"

// A File exposes the descriptor of an open file, as *os.File does.
type File interface {
	Fd() uintptr
}

// Sequential advises that f will be read sequentially from start to end.
func Sequential(f File) error { return sequential(f) }
