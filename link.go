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

// staticLibCommand synthesizes the archive command for a static library
// target. Unix ar and MSVC lib.exe both take the full object list as
// positional arguments; neither accepts global or per-target cflags/ldflags,
// since archiving isn't compiling or linking.
func staticLibCommand(t *Target) string {
	ctx := t.ctx
	objs := make([]string, len(t.Sources))
	for i, s := range t.Sources {
		objs[i] = objectPath(t, s)
	}
	if ctx.toolchain == ToolchainMSVC {
		return fmt.Sprintf("%s /nologo /OUT:%s %s", ctx.Archiver, t.OutputFile, strings.Join(objs, " "))
	}
	return fmt.Sprintf("%s rcs %s %s", ctx.Archiver, t.OutputFile, strings.Join(objs, " "))
}

// linkCommand synthesizes the link command for an executable or shared
// library target. Apple clang, like Unix gcc/clang, takes -lfoo, never
// -lfoo.dylib here; only the flag requesting a shared object differs
// (-dynamiclib vs -shared vs /LD on the MSVC cl.exe driver).
func linkCommand(t *Target) string {
	ctx := t.ctx
	objs := make([]string, len(t.Sources))
	for i, s := range t.Sources {
		objs[i] = objectPath(t, s)
	}

	var b strings.Builder
	b.WriteString(ctx.Compiler)

	if ctx.toolchain == ToolchainMSVC {
		fmt.Fprintf(&b, " /nologo /Fe%s %s", t.OutputFile, strings.Join(objs, " "))
		if t.Variant == SharedLibrary {
			b.WriteString(" /LD")
		}
		for _, libDir := range t.LibDirs {
			fmt.Fprintf(&b, " /LIBPATH:%s", libDir)
		}
		writeLinkFlags(&b, ctx, t)
		for _, dep := range t.Deps {
			if dep.Variant == StaticLibrary || dep.Variant == SharedLibrary || dep.Variant == Proxy {
				fmt.Fprintf(&b, " %s", dep.OutputFile)
			}
		}
		for _, lib := range t.LinkLibs {
			fmt.Fprintf(&b, " %s.lib", lib)
		}
		return b.String()
	}

	fmt.Fprintf(&b, " -o %s %s", t.OutputFile, strings.Join(objs, " "))
	for _, libDir := range t.LibDirs {
		fmt.Fprintf(&b, " -L%s", libDir)
	}
	for _, lib := range t.LinkLibs {
		fmt.Fprintf(&b, " -l%s", lib)
	}
	for _, dep := range t.Deps {
		if dep.Variant == StaticLibrary || dep.Variant == SharedLibrary || dep.Variant == Proxy {
			fmt.Fprintf(&b, " %s", dep.OutputFile)
		}
	}
	writeLinkFlags(&b, ctx, t)
	if t.Variant == SharedLibrary {
		if ctx.toolchain == ToolchainAppleClang {
			b.WriteString(" -dynamiclib")
		} else {
			b.WriteString(" -shared")
		}
	}
	return b.String()
}

func writeLinkFlags(b *strings.Builder, ctx *Context, t *Target) {
	switch {
	case t.HasLDFlags:
		b.WriteString(" " + t.LDFlags)
	case ctx.HasGlobalLDFlags:
		b.WriteString(" " + ctx.GlobalLDFlags)
	}
}
