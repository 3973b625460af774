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

// Command build is the top-level driver for the example project, grounded
// on original_source/example/build.c: it self-rebuilds, builds the lib/
// subproject's static library as a nested driver, and links the resulting
// archive into the top-level executable.
package main

import (
	"fmt"
	"os"

	"github.com/grant-wade/cbuild"
)

func buildDependencyDriver() error {
	if cbuild.FileExists("lib/cbuild") || !cbuild.FileExists("lib/build.go") {
		return nil
	}
	return cbuild.RunCommand("cd lib && go build -o cbuild .")
}

func main() {
	ctx := cbuild.NewContext()
	ctx.OutputDir = "build"
	ctx.EmitCompileCommands = true

	if err := cbuild.SelfRebuild([]string{"build.go"}, "go build -o build_driver .", os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := buildDependencyDriver(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize dependencies:", err)
		os.Exit(1)
	}

	math := ctx.AddSubproject("math", "lib", "./cbuild")
	mathTargets, err := math.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mainTarget := ctx.NewTarget("main", cbuild.Executable)
	mainTarget.AddSource("main.c")
	mainTarget.AddIncludeDir("lib")
	for _, t := range mathTargets {
		mainTarget.LinkTarget(t)
	}

	os.Exit(cbuild.Run(ctx, os.Args))
}
