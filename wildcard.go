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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
)

// hasWildcardMeta reports whether s contains a character expandWildcard
// treats specially.
func hasWildcardMeta(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// expandWildcard is a component-wise matcher where "*"
// matches any run of characters within one path component, "?" matches
// exactly one character, and "**" matches zero or more complete path
// components. Results are returned in a deterministic, lexically sorted
// order. A pattern with no wildcard characters expands to itself.
func expandWildcard(pattern string) ([]string, error) {
	if !hasWildcardMeta(pattern) {
		return []string{pattern}, nil
	}

	root := "."
	comps := strings.Split(filepath.ToSlash(pattern), "/")
	if len(comps) > 0 && comps[0] == "" {
		root = "/"
		comps = comps[1:]
	}

	results := expandComponents(root, comps)
	sort.Strings(results)
	return results, nil
}

// expandComponents matches the path components comps against entries found
// under baseDir, returning full paths (baseDir-relative is not stripped:
// results are rooted the same way baseDir is).
func expandComponents(baseDir string, comps []string) []string {
	if len(comps) == 0 {
		return []string{baseDir}
	}
	head, rest := comps[0], comps[1:]

	if head == "**" {
		var results []string
		// ** matches zero path components.
		results = append(results, expandComponents(baseDir, rest)...)
		// ** matches one or more: descend into every subdirectory, keeping
		// "**" in the pattern for further levels.
		for _, name := range sortedDirNames(baseDir) {
			results = append(results, expandComponents(joinPattern(baseDir, name), comps)...)
		}
		return results
	}

	var results []string
	for _, name := range sortedEntryNames(baseDir) {
		if !matchGlobComponent(head, name) {
			continue
		}
		full := joinPattern(baseDir, name)
		if len(rest) == 0 {
			results = append(results, full)
			continue
		}
		if isDir(full) {
			results = append(results, expandComponents(full, rest)...)
		}
	}
	return results
}

func joinPattern(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	if dir == "/" {
		return "/" + name
	}
	return dir + "/" + name
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func sortedEntryNames(dir string) []string {
	d := dir
	if d == "" {
		d = "."
	}
	entries, err := os.ReadDir(d)
	if err != nil {
		glog.V(2).Infof("wildcard: readdir %s: %v", d, err)
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func sortedDirNames(dir string) []string {
	d := dir
	if d == "" {
		d = "."
	}
	entries, err := os.ReadDir(d)
	if err != nil {
		glog.V(2).Infof("wildcard: readdir %s: %v", d, err)
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// matchGlobComponent matches a single path component against a pattern
// containing "*" (any run, never crossing a separator since components are
// already separator-free) and "?" (exactly one character).
func matchGlobComponent(pattern, name string) bool {
	return matchGlobRunes([]rune(pattern), []rune(name))
}

func matchGlobRunes(pattern, name []rune) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}
	switch pattern[0] {
	case '*':
		// A run of consecutive '*' behaves like one.
		i := 0
		for i < len(pattern) && pattern[i] == '*' {
			i++
		}
		if i == len(pattern) {
			return true
		}
		for j := 0; j <= len(name); j++ {
			if matchGlobRunes(pattern[i:], name[j:]) {
				return true
			}
		}
		return false
	case '?':
		if len(name) == 0 {
			return false
		}
		return matchGlobRunes(pattern[1:], name[1:])
	default:
		if len(name) == 0 || name[0] != pattern[0] {
			return false
		}
		return matchGlobRunes(pattern[1:], name[1:])
	}
}
