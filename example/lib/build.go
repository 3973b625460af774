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

// Command build is the subproject driver for the math static library,
// grounded on original_source/lib/build.c: a standalone driver covering just
// this directory's sources, invoked by the parent driver either directly or
// through the subproject manifest protocol (cbuild.Run handles --manifest).
package main

import (
	"os"

	"github.com/grant-wade/cbuild"
)

func main() {
	ctx := cbuild.NewContext()
	ctx.OutputDir = "build"

	if err := cbuild.SelfRebuild([]string{"build.go"}, "go build -o cbuild .", os.Args); err != nil {
		os.Exit(1)
	}

	math := ctx.NewTarget("math", cbuild.StaticLibrary)
	math.AddSource("math.c")

	os.Exit(cbuild.Run(ctx, os.Args))
}
