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

import (
	"path/filepath"
	"strings"
)

// cleanPath normalizes a path for use as a map/registry key and for
// deterministic command-line emission, without making it absolute.
func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// joinPath joins dir and name the way target output paths are built,
// tolerating an empty dir.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return cleanPath(filepath.Join(dir, name))
}

// trimExt returns p with its final extension removed, e.g. "foo.c" -> "foo".
func trimExt(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// baseName strips both directory and extension, e.g. "src/foo.c" -> "foo".
func baseName(p string) string {
	return trimExt(filepath.Base(p))
}
