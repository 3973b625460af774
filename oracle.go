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

// objectPath returns the object file a source compiles to within a target's
// object directory. The ".o" extension is used unconditionally, including
// under MSVC, matching §4.3/§6 and cbuild.h's own Windows object naming.
func objectPath(t *Target, source string) string {
	return joinPath(t.ObjDir, baseName(source)+".o")
}

// needsRecompile reports whether source must be recompiled: its object file
// is missing, or older than the source itself. A future revision could
// additionally consult a compiler-emitted dependency sidecar file to catch
// stale headers; none is read today, so header-only edits that don't touch
// the .c file are invisible to this check.
func needsRecompile(t *Target, source string) bool {
	obj := objectPath(t, source)
	objTime := platform.ModTime(obj)
	if objTime < 0 {
		return true
	}
	srcTime := platform.ModTime(source)
	if srcTime < 0 {
		return true
	}
	return srcTime > objTime
}

// needsRelink reports whether a target's final artifact is stale relative to
// its own object files and the outputs of every target it depends on.
func needsRelink(t *Target) bool {
	outTime := platform.ModTime(t.OutputFile)
	if outTime < 0 {
		return true
	}
	for _, src := range t.Sources {
		objTime := platform.ModTime(objectPath(t, src))
		if objTime < 0 || objTime > outTime {
			return true
		}
	}
	for _, dep := range t.Deps {
		if dep.OutputFile == "" {
			continue
		}
		depTime := platform.ModTime(dep.OutputFile)
		if depTime < 0 || depTime > outTime {
			return true
		}
	}
	return false
}
