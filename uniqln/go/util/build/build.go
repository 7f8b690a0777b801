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

// Package build provides information about how a given binary was built.
package build // import "uniqln.io/uniqln/go/util/build"

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X uniqln.io/uniqln/go/util/build._RELEASE_VERSION=...".
var (
	_BUILD_SCM_REVISION string
	_RELEASE_VERSION    string
)

// VersionLine returns the following formatted string
// fmt.Sprintf("Version: %s [%s]", ReleaseVersion(), Revision()).
func VersionLine() string {
	return fmt.Sprintf("Version: %s [%s]", ReleaseVersion(), Revision())
}

// ReleaseVersion returns the release version for the current build.
func ReleaseVersion() string {
	if _RELEASE_VERSION != "" {
		return _RELEASE_VERSION
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "devel"
}

// Revision returns the source control revision for the current build.
func Revision() string {
	if _BUILD_SCM_REVISION != "" {
		return _BUILD_SCM_REVISION
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "HEAD"
}
