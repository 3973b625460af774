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
	"os"
	"strings"
)

// compileCommand synthesizes the single-source compile invocation for
// source within target t, following each toolchain family's argument shape.
// The returned command line is also what compile_commands.json records for
// that source.
func compileCommand(t *Target, source string) string {
	ctx := t.ctx
	var b strings.Builder
	b.WriteString(ctx.Compiler)

	switch ctx.toolchain {
	case ToolchainMSVC:
		b.WriteString(" /c /nologo")
		b.WriteString(" /showIncludes")
		for _, inc := range t.IncludeDirs {
			fmt.Fprintf(&b, " /I%s", inc)
		}
		for _, d := range ctx.GlobalDefines {
			fmt.Fprintf(&b, " /D%s", d)
		}
		for _, d := range t.Defines {
			fmt.Fprintf(&b, " /D%s", d)
		}
		writeFlags(&b, ctx, t)
		fmt.Fprintf(&b, " /Fo%s %s", objectPath(t, source), source)
	default:
		// Unix gcc/clang and Apple clang share compile-time syntax; only
		// link-time library naming differs between them.
		b.WriteString(" -c")
		for _, inc := range t.IncludeDirs {
			fmt.Fprintf(&b, " -I%s", inc)
		}
		for _, d := range ctx.GlobalDefines {
			fmt.Fprintf(&b, " -D%s", d)
		}
		for _, d := range t.Defines {
			fmt.Fprintf(&b, " -D%s", d)
		}
		writeFlags(&b, ctx, t)
		fmt.Fprintf(&b, " -o %s %s", objectPath(t, source), source)
	}
	return b.String()
}

func writeFlags(b *strings.Builder, ctx *Context, t *Target) {
	switch {
	case t.HasCFlags:
		b.WriteString(" " + t.CFlags)
	case ctx.HasGlobalCFlags:
		b.WriteString(" " + ctx.GlobalCFlags)
	}
}

// depSidecarPath is the dependency file path written next to source's
// object under MSVC-family toolchains, parsed from /showIncludes output.
// cbuild writes it but never reads it back; see the oracle.go comment on
// the associated limitation.
func depSidecarPath(t *Target, source string) string {
	return objectPath(t, source) + ".d"
}

// showIncludesTag is the line prefix cl.exe's /showIncludes emits for every
// header it pulls in, e.g. "Note: including file:   c:\foo\bar.h".
const showIncludesTag = "Note: including file:"

// parseShowIncludes extracts the header paths named by cl.exe's
// /showIncludes lines out of a compiler's captured stdout, in the order
// they appear.
func parseShowIncludes(output string) []string {
	var includes []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		idx := strings.Index(line, showIncludesTag)
		if idx < 0 {
			continue
		}
		path := strings.TrimSpace(line[idx+len(showIncludesTag):])
		if path != "" {
			includes = append(includes, path)
		}
	}
	return includes
}

// writeShowIncludesDepFile writes the dependency sidecar file for an
// MSVC-family compile of source, listing obj's header dependencies as
// parsed from the compiler's captured /showIncludes stdout. Mirrors
// cbuild.h's compile_source Windows branch; nothing in the oracle reads
// this file back today (see oracle.go).
func writeShowIncludesDepFile(t *Target, source, compilerOutput string) error {
	includes := parseShowIncludes(compilerOutput)
	obj := objectPath(t, source)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", obj, source)
	for _, inc := range includes {
		fmt.Fprintf(&b, " \\\n  %s", inc)
	}
	b.WriteString("\n")

	return os.WriteFile(depSidecarPath(t, source), []byte(b.String()), 0o644)
}
