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
	"io"
	"os"

	"github.com/grant-wade/cbuild/internal/platform"
	"github.com/grant-wade/cbuild/internal/ui"
)

// Context is the module-scoped configuration and registry object: a single
// explicit handle instead of package-level mutable state, so a driver
// program, its subprojects, and its tests can each hold an independent
// instance. Every Target and Command a driver program creates belongs to
// exactly one Context and is registered with it in creation order.
type Context struct {
	// OutputDir is the root directory object files, libraries and
	// executables are written under. Defaults to "build".
	OutputDir string
	// Jobs is the size of the parallel compile worker pool. Defaults to
	// the host CPU count.
	Jobs int
	// Compiler is the C compiler driver invoked for both compiling and
	// linking. Defaults to the CC environment variable, falling back to
	// "cc".
	Compiler string
	Archiver string

	GlobalCFlags     string
	HasGlobalCFlags  bool
	GlobalLDFlags    string
	HasGlobalLDFlags bool
	GlobalDefines    []string

	// EmitCompileCommands enables writing compile_commands.json into
	// OutputDir after a successful build .
	EmitCompileCommands bool

	toolchain ToolchainFamily

	targets     []*Target
	commands    []*Command
	subprojects []*Subproject
	subcommands []Subcommand

	printer *ui.Printer
}

// Subcommand is a named driver action exposed on the CLI alongside the
// default build and the built-in clean/target subcommands .
type Subcommand struct {
	Name string
	Run  func() error
}

// AddSubcommand registers a named action the CLI dispatches to directly,
// e.g. "test" or "install", independent of the target graph.
func (ctx *Context) AddSubcommand(name string, run func() error) {
	ctx.subcommands = append(ctx.subcommands, Subcommand{Name: name, Run: run})
}

// NewContext returns a Context configured with the platform defaults: output
// directory "build", one worker per CPU, and a compiler resolved from CC or
// "cc". Toolchain family is inferred from that compiler and the host OS.
func NewContext() *Context {
	compiler := os.Getenv("CC")
	if compiler == "" {
		compiler = "cc"
	}
	tc := detectToolchain(compiler)
	ctx := &Context{
		OutputDir: "build",
		Jobs:      platform.NumCPU(),
		Compiler:  compiler,
		Archiver:  defaultArchiver(tc),
		toolchain: tc,
		printer:   ui.NewPrinter(os.Stdout),
	}
	return ctx
}

// SetOutputWriter redirects step/status output, primarily for tests.
func (ctx *Context) SetOutputWriter(w io.Writer) {
	ctx.printer = ui.NewPrinter(w)
}

// SetGlobalCFlags sets project-wide default compiler flags, used by every
// target that has not called its own SetCFlags (a target's flags win).
func (ctx *Context) SetGlobalCFlags(flags string) {
	ctx.GlobalCFlags = flags
	ctx.HasGlobalCFlags = true
}

// SetGlobalLDFlags is the link-time counterpart of SetGlobalCFlags.
func (ctx *Context) SetGlobalLDFlags(flags string) {
	ctx.GlobalLDFlags = flags
	ctx.HasGlobalLDFlags = true
}

// AddGlobalDefine adds a -D flag applied to every target's compile command.
func (ctx *Context) AddGlobalDefine(define string) {
	ctx.GlobalDefines = append(ctx.GlobalDefines, define)
}

// SetGlobalFlag adds a boolean feature-flag define (-Dname=1 or -Dname=0)
// applied to every target's compile command, the project-wide counterpart
// of Target.SetFlag.
func (ctx *Context) SetGlobalFlag(name string, value bool) {
	v := 0
	if value {
		v = 1
	}
	ctx.GlobalDefines = append(ctx.GlobalDefines, fmt.Sprintf("%s=%d", name, v))
}

// NewTarget creates and registers a Target of the given variant, computing
// its output path and object directory immediately: these never change
// after creation even if OutputDir is mutated later.
func (ctx *Context) NewTarget(name string, variant Variant) *Target {
	t := &Target{
		Name:       name,
		Variant:    variant,
		ctx:        ctx,
		OutputFile: ctx.outputPath(name, variant),
		ObjDir:     joinPath(ctx.OutputDir, "obj_"+name),
	}
	ctx.targets = append(ctx.targets, t)
	return t
}

// NewCommand creates and registers a standalone Command , usable
// as a target's pre/post-command or as another command's dependency.
func (ctx *Context) NewCommand(name, commandLine string) *Command {
	c := &Command{Name: name, CommandLine: commandLine}
	ctx.commands = append(ctx.commands, c)
	return c
}

// Targets returns the registered targets in creation order.
func (ctx *Context) Targets() []*Target { return ctx.targets }

// Commands returns the registered standalone commands in creation order.
func (ctx *Context) Commands() []*Command { return ctx.commands }

// Subprojects returns the registered subprojects in creation order.
func (ctx *Context) Subprojects() []*Subproject { return ctx.subprojects }

// Toolchain reports the detected toolchain family.
func (ctx *Context) Toolchain() ToolchainFamily { return ctx.toolchain }

func (ctx *Context) outputPath(name string, v Variant) string {
	switch v {
	case Executable:
		if ctx.toolchain == ToolchainMSVC {
			return joinPath(ctx.OutputDir, name+".exe")
		}
		return joinPath(ctx.OutputDir, name)
	case StaticLibrary:
		if ctx.toolchain == ToolchainMSVC {
			return joinPath(ctx.OutputDir, name+".lib")
		}
		return joinPath(ctx.OutputDir, "lib"+name+".a")
	case SharedLibrary:
		switch ctx.toolchain {
		case ToolchainMSVC:
			return joinPath(ctx.OutputDir, name+".dll")
		case ToolchainAppleClang:
			return joinPath(ctx.OutputDir, "lib"+name+".dylib")
		default:
			return joinPath(ctx.OutputDir, "lib"+name+".so")
		}
	case Proxy:
		return ""
	}
	return ""
}
