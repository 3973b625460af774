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
	"fmt"
	"strings"
)

// Subproject represents a nested project built by its own driver program.
// Rather than parsing that driver's build graph, cbuild invokes it with
// --manifest and reads back a line-oriented protocol describing what it
// would build, then wraps each entry in a Proxy target whose single
// pre-command re-invokes the nested driver for real.
type Subproject struct {
	Name      string
	Dir       string
	DriverCmd string

	ctx     *Context
	loaded  bool
	proxies []*Target
}

// AddSubproject registers a subproject rooted at dir, built by running
// driverCmd inside that directory.
func (ctx *Context) AddSubproject(name, dir, driverCmd string) *Subproject {
	sp := &Subproject{Name: name, Dir: dir, DriverCmd: driverCmd, ctx: ctx}
	ctx.subprojects = append(ctx.subprojects, sp)
	return sp
}

// manifestEntry is one parsed "TYPE NAME PATH" line from a nested driver's
// --manifest output.
type manifestEntry struct {
	Type Variant
	Name string
	Path string
}

// manifestTypeString renders v in the manifest wire protocol's short form
// (static_lib/shared_lib/executable), independent of Variant.String()'s
// longer human-readable form used in --help text.
func manifestTypeString(v Variant) string {
	switch v {
	case StaticLibrary:
		return "static_lib"
	case SharedLibrary:
		return "shared_lib"
	default:
		return "executable"
	}
}

func parseManifestType(s string) (Variant, error) {
	switch s {
	case "executable":
		return Executable, nil
	case "static_lib":
		return StaticLibrary, nil
	case "shared_lib":
		return SharedLibrary, nil
	default:
		return 0, fmt.Errorf("unrecognized manifest target type %q", s)
	}
}

func parseManifest(output string) ([]manifestEntry, error) {
	var entries []manifestEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed manifest line %q: want TYPE NAME PATH", line)
		}
		variant, err := parseManifestType(fields[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, manifestEntry{Type: variant, Name: fields[1], Path: fields[2]})
	}
	return entries, nil
}

// Load invokes the subproject's driver with --manifest (once; subsequent
// calls return the cached proxy targets) and registers one Proxy target per
// manifest entry, each with exactly one pre-command that builds it for real.
func (sp *Subproject) Load() ([]*Target, error) {
	if sp.loaded {
		return sp.proxies, nil
	}
	result, err := runShellIn(sp.Dir, sp.DriverCmd+" --manifest")
	if err != nil {
		return nil, fmt.Errorf("subproject %s: loading manifest: %w", sp.Name, err)
	}
	entries, err := parseManifest(result.CombinedOutput)
	if err != nil {
		return nil, fmt.Errorf("subproject %s: %w", sp.Name, err)
	}

	for _, e := range entries {
		t := &Target{
			Name:       sp.Name + "/" + e.Name,
			Variant:    Proxy,
			ctx:        sp.ctx,
			OutputFile: joinPath(sp.Dir, e.Path),
		}
		build := sp.ctx.NewCommand(t.Name+":build", sp.DriverCmd+" "+e.Name)
		build.CommandLine = wrapInDir(sp.Dir, build.CommandLine)
		t.PreCommands = append(t.PreCommands, build)
		sp.ctx.targets = append(sp.ctx.targets, t)
		sp.proxies = append(sp.proxies, t)
	}
	sp.loaded = true
	return sp.proxies, nil
}

// Clean invokes the subproject's driver with "clean" in its own directory,
// so the parent project's clean subcommand can recurse into it before
// removing its own output directory.
func (sp *Subproject) Clean() error {
	_, err := runShellIn(sp.Dir, sp.DriverCmd+" clean")
	if err != nil {
		return fmt.Errorf("subproject %s: clean: %w", sp.Name, err)
	}
	return nil
}

func wrapInDir(dir, commandLine string) string {
	if dir == "" || dir == "." {
		return commandLine
	}
	return fmt.Sprintf("cd %s && %s", shellQuote(dir), commandLine)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
