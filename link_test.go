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

import "testing"

func TestStaticLibCommandUnix(t *testing.T) {
	ctx := NewContext()
	ctx.toolchain = ToolchainUnix
	ctx.Archiver = "ar"
	target := ctx.NewTarget("math", StaticLibrary)
	target.Sources = []string{"a.c", "b.c"}

	got := staticLibCommand(target)
	want := "ar rcs " + target.OutputFile + " " + objectPath(target, "a.c") + " " + objectPath(target, "b.c")
	if got != want {
		t.Errorf("staticLibCommand =\n%q\nwant\n%q", got, want)
	}
}

func TestLinkCommandAppleClangUsesBareDashL(t *testing.T) {
	ctx := NewContext()
	ctx.toolchain = ToolchainAppleClang
	ctx.Compiler = "clang"
	target := ctx.NewTarget("app", Executable)
	target.Sources = []string{"main.c"}
	target.AddLinkLibrary("m")

	got := linkCommand(target)
	if !contains(got, "-lm") {
		t.Errorf("linkCommand = %q, want -lm present", got)
	}
	if contains(got, "-lm.dylib") || contains(got, ".dylib") {
		t.Errorf("linkCommand = %q, must never suffix -l with .dylib", got)
	}
}

func TestLinkCommandSharedLibraryFlagsPerToolchain(t *testing.T) {
	cases := []struct {
		tc   ToolchainFamily
		want string
	}{
		{ToolchainUnix, "-shared"},
		{ToolchainAppleClang, "-dynamiclib"},
	}
	for _, c := range cases {
		ctx := NewContext()
		ctx.toolchain = c.tc
		ctx.Compiler = "cc"
		target := ctx.NewTarget("foo", SharedLibrary)
		target.Sources = []string{"a.c"}

		got := linkCommand(target)
		if !contains(got, c.want) {
			t.Errorf("toolchain %v: linkCommand = %q, want %q present", c.tc, got, c.want)
		}
	}
}

func TestLinkCommandLinksDependencyOutputs(t *testing.T) {
	ctx := NewContext()
	ctx.toolchain = ToolchainUnix
	ctx.Compiler = "cc"
	lib := ctx.NewTarget("math", StaticLibrary)
	exe := ctx.NewTarget("app", Executable)
	exe.Sources = []string{"main.c"}
	exe.LinkTarget(lib)

	got := linkCommand(exe)
	if !contains(got, lib.OutputFile) {
		t.Errorf("linkCommand = %q, want dependency output %q present", got, lib.OutputFile)
	}
}

func TestLinkCommandMSVCLibSuffix(t *testing.T) {
	ctx := NewContext()
	ctx.toolchain = ToolchainMSVC
	ctx.Compiler = "cl.exe"
	target := ctx.NewTarget("app", Executable)
	target.Sources = []string{"main.c"}
	target.AddLinkLibrary("ws2_32")

	got := linkCommand(target)
	if !contains(got, "ws2_32.lib") {
		t.Errorf("linkCommand = %q, want ws2_32.lib present", got)
	}
}
