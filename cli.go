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

	"github.com/grant-wade/cbuild/internal/platform"
	"github.com/spf13/cobra"
)

// Run is the CLI entry point a driver program's main calls with os.Args.
// With no arguments it builds every registered target; "clean" removes the
// output directory; each target and registered subcommand name becomes its
// own subcommand; --manifest short-circuits everything else and prints the
// manifest protocol's line format to stdout so a parent driver can treat
// this one as a nested subproject.
func Run(ctx *Context, argv []string) int {
	for _, a := range argv[1:] {
		if a == "--manifest" {
			printManifest(ctx)
			return 0
		}
	}

	root := newRootCommand(ctx)
	root.SetArgs(argv[1:])
	if err := root.Execute(); err != nil {
		errorf("%v", err)
		return 1
	}
	return 0
}

func newRootCommand(ctx *Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "driver",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.Build()
		},
	}
	root.Flags().Bool("manifest", false, "print the build manifest and exit")

	root.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "remove the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sp := range ctx.subprojects {
				if err := sp.Clean(); err != nil {
					return err
				}
			}
			return platform.RemoveAll(ctx.OutputDir)
		},
	})

	for _, t := range ctx.targets {
		t := t
		if t.Variant == Proxy {
			continue
		}
		root.AddCommand(&cobra.Command{
			Use:   t.Name,
			Short: fmt.Sprintf("build the %s %s", t.Variant, t.Name),
			RunE: func(cmd *cobra.Command, args []string) error {
				return ctx.Build(t)
			},
		})
	}

	for _, sc := range ctx.subcommands {
		sc := sc
		root.AddCommand(&cobra.Command{
			Use: sc.Name,
			RunE: func(cmd *cobra.Command, args []string) error {
				return sc.Run()
			},
		})
	}

	return root
}

func printManifest(ctx *Context) {
	for _, t := range ctx.targets {
		if t.Variant == Proxy {
			continue
		}
		fmt.Printf("%s %s %s\n", manifestTypeString(t.Variant), t.Name, t.OutputFile)
	}
}
