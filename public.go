// Copyright 2024 The cbuild Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbuild

import "github.com/grant-wade/cbuild/internal/platform"

// FileExists reports whether path names a regular file, for driver programs
// that need an ad hoc existence check outside the target graph (e.g. to
// decide whether a dependency still needs its own one-off build step
// before the graph runs).
func FileExists(path string) bool {
	return platform.FileExists(path)
}

// RunCommand runs an arbitrary shell command line outside the build graph
// and returns its error, if any. Intended for a driver's own setup logic,
// not for anything the graph executor should memoize; use Context.NewCommand
// and a pre/post-command for that.
func RunCommand(commandLine string) error {
	_, err := runShell(commandLine)
	return err
}
