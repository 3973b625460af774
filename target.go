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

import "fmt"

// Variant identifies the kind of artifact a Target produces: a tagged enum
// instead of a hierarchy of target subtypes.
type Variant int

const (
	Executable Variant = iota
	StaticLibrary
	SharedLibrary
	// Proxy targets stand in for a target built by a subproject's own
	// driver invocation ; their only action is the single
	// pre-command that shells out to the nested driver.
	Proxy
)

func (v Variant) String() string {
	switch v {
	case Executable:
		return "executable"
	case StaticLibrary:
		return "static_library"
	case SharedLibrary:
		return "shared_library"
	case Proxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// Target is a single build product: an executable, a static or shared
// library, or a proxy for a subproject's own output . Attribute lists preserve insertion order since
// that order determines command-line argument order.
type Target struct {
	Name    string
	Variant Variant

	Sources     []string
	IncludeDirs []string
	LibDirs     []string
	LinkLibs    []string
	Defines     []string

	Deps         []*Target
	PreCommands  []*Command
	PostCommands []*Command

	CFlags     string
	HasCFlags  bool
	LDFlags    string
	HasLDFlags bool

	// OutputFile and ObjDir are computed once at creation time and never
	// change afterward.
	OutputFile string
	ObjDir     string

	ctx *Context
}

// addExpanded expands pattern (if it contains wildcard metacharacters) and
// appends every match to *into, warning rather than failing when nothing
// matches.
func (t *Target) addExpanded(into *[]string, pattern, what string) {
	matches, err := expandWildcard(pattern)
	if err != nil {
		warnf("target %s: expanding %s pattern %q: %v", t.Name, what, pattern, err)
		return
	}
	if len(matches) == 0 {
		if t.ctx != nil && t.ctx.printer != nil {
			t.ctx.printer.Warn("target %s: %s pattern %q matched nothing", t.Name, what, pattern)
		}
		return
	}
	*into = append(*into, matches...)
}

// AddSource adds one source file, or every file matching a wildcard pattern,
// to the target's compile list.
func (t *Target) AddSource(pattern string) *Target {
	t.addExpanded(&t.Sources, pattern, "source")
	return t
}

// AddIncludeDir adds a -I search directory, or every directory matching a
// wildcard pattern. Non-directory matches are silently skipped.
func (t *Target) AddIncludeDir(pattern string) *Target {
	var matched []string
	t.addExpanded(&matched, pattern, "include dir")
	for _, m := range matched {
		if isDir(m) || !hasWildcardMeta(pattern) {
			t.IncludeDirs = append(t.IncludeDirs, m)
		}
	}
	return t
}

// AddLibraryDir adds a -L search directory the same way AddIncludeDir adds a
// -I directory.
func (t *Target) AddLibraryDir(pattern string) *Target {
	var matched []string
	t.addExpanded(&matched, pattern, "library dir")
	for _, m := range matched {
		if isDir(m) || !hasWildcardMeta(pattern) {
			t.LibDirs = append(t.LibDirs, m)
		}
	}
	return t
}

// AddLinkLibrary names a system or external library to link against, passed
// through verbatim as the argument to -l.
func (t *Target) AddLinkLibrary(name string) *Target {
	t.LinkLibs = append(t.LinkLibs, name)
	return t
}

// AddDefine adds a bare -D flag.
func (t *Target) AddDefine(name string) *Target {
	t.Defines = append(t.Defines, name)
	return t
}

// AddDefineValue adds a -Dname=value flag.
func (t *Target) AddDefineValue(name, value string) *Target {
	t.Defines = append(t.Defines, fmt.Sprintf("%s=%s", name, value))
	return t
}

// SetFlag adds a boolean feature-flag define (-Dname=1 or -Dname=0),
// the per-target counterpart of Context.SetGlobalFlag.
func (t *Target) SetFlag(name string, value bool) *Target {
	t.Defines = append(t.Defines, fmt.Sprintf("%s=%d", name, boolToInt(value)))
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// LinkTarget records a dependency on another target in this Context: dep is
// built first, and if it is a library, it is linked into t.
func (t *Target) LinkTarget(dep *Target) *Target {
	t.Deps = append(t.Deps, dep)
	return t
}

// AddPreCommand registers a command that must finish before this target is
// built.
func (t *Target) AddPreCommand(c *Command) *Target {
	t.PreCommands = append(t.PreCommands, c)
	return t
}

// AddPostCommand registers a command that runs after this target builds
// successfully.
func (t *Target) AddPostCommand(c *Command) *Target {
	t.PostCommands = append(t.PostCommands, c)
	return t
}

// SetCFlags overrides the project-wide compile flags for this target alone.
func (t *Target) SetCFlags(flags string) *Target {
	t.CFlags = flags
	t.HasCFlags = true
	return t
}

// SetLDFlags overrides the project-wide link flags for this target alone.
func (t *Target) SetLDFlags(flags string) *Target {
	t.LDFlags = flags
	t.HasLDFlags = true
	return t
}
