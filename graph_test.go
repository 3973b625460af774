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
	"testing"
)

// writeFakeCompiler and writeFakeArchiver write POSIX shell scripts that
// mimic just enough of a real tool's argument shape to exercise the graph
// executor without a real C toolchain installed: the fake compiler
// understands "... -o OUT SRC", and the fake archiver understands
// "rcs OUT OBJ...".
func writeFakeCompiler(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fakecc.sh")
	script := "#!/bin/sh\nprev=\nout=\nfor a in \"$@\"; do\n  if [ \"$prev\" = \"-o\" ]; then out=\"$a\"; fi\n  prev=\"$a\"\ndone\nmkdir -p \"$(dirname \"$out\")\"\n: > \"$out\"\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFakeArchiver(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fakear.sh")
	script := "#!/bin/sh\nshift\nout=\"$1\"\nshift\nmkdir -p \"$(dirname \"$out\")\"\n: > \"$out\"\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildCompilesAndLinksExecutable(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(dir)

	os.WriteFile("main.c", []byte("int main(){return 0;}"), 0o644)

	ctx := NewContext()
	ctx.toolchain = ToolchainUnix
	ctx.Compiler = writeFakeCompiler(t, dir)

	target := ctx.NewTarget("app", Executable)
	target.AddSource("main.c")

	if err := ctx.Build(); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if !FileExists(target.OutputFile) {
		t.Errorf("expected output file %s to exist", target.OutputFile)
	}
	if !FileExists(objectPath(target, "main.c")) {
		t.Errorf("expected object file to exist")
	}
}

func TestBuildSkipsUpToDateTarget(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(dir)

	os.WriteFile("main.c", []byte("int main(){return 0;}"), 0o644)

	ctx := NewContext()
	ctx.toolchain = ToolchainUnix
	ctx.Compiler = writeFakeCompiler(t, dir)

	target := ctx.NewTarget("app", Executable)
	target.AddSource("main.c")

	if err := ctx.Build(); err != nil {
		t.Fatalf("first Build() = %v", err)
	}

	// Replace the compiler with one that always fails; a second build of an
	// up-to-date target must not invoke it at all.
	failing := filepath.Join(dir, "failcc.sh")
	os.WriteFile(failing, []byte("#!/bin/sh\nexit 1\n"), 0o755)
	ctx.Compiler = failing

	if err := ctx.Build(); err != nil {
		t.Fatalf("second Build() on up-to-date target = %v, want nil (should be a no-op)", err)
	}
}

func TestBuildLinksLibraryIntoExecutable(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(dir)

	os.WriteFile("math.c", []byte("int add(int a,int b){return a+b;}"), 0o644)
	os.WriteFile("main.c", []byte("int main(){return 0;}"), 0o644)

	ctx := NewContext()
	ctx.toolchain = ToolchainUnix
	ctx.Compiler = writeFakeCompiler(t, dir)
	ctx.Archiver = writeFakeArchiver(t, dir)

	lib := ctx.NewTarget("math", StaticLibrary)
	lib.AddSource("math.c")

	app := ctx.NewTarget("app", Executable)
	app.AddSource("main.c")
	app.LinkTarget(lib)

	if err := ctx.Build(app); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if !FileExists(lib.OutputFile) {
		t.Error("expected static library to have been built as a dependency")
	}
	if !FileExists(app.OutputFile) {
		t.Error("expected executable to exist")
	}
}

func TestBuildDetectsCycle(t *testing.T) {
	ctx := NewContext()
	a := ctx.NewTarget("a", StaticLibrary)
	b := ctx.NewTarget("b", StaticLibrary)
	a.LinkTarget(b)
	b.LinkTarget(a)

	if err := ctx.Build(a); err == nil {
		t.Error("expected a cycle error")
	}
}

func TestBuildSharesCommandAcrossTargets(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(dir)
	os.WriteFile("a.c", []byte("int a(){return 0;}"), 0o644)
	os.WriteFile("b.c", []byte("int b(){return 0;}"), 0o644)

	ctx := NewContext()
	ctx.toolchain = ToolchainUnix
	ctx.Compiler = writeFakeCompiler(t, dir)

	shared := ctx.NewCommand("shared-setup", "true")

	one := ctx.NewTarget("one", StaticLibrary)
	one.AddSource("a.c")
	one.AddPreCommand(shared)
	two := ctx.NewTarget("two", StaticLibrary)
	two.AddSource("b.c")
	two.AddPreCommand(shared)

	if err := ctx.Build(one, two); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if !shared.executed {
		t.Error("expected shared pre-command to have executed")
	}
}
