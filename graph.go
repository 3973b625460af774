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
	"path/filepath"

	"github.com/grant-wade/cbuild/internal/platform"
	"github.com/grant-wade/cbuild/internal/schedule"
)

// buildState carries the per-invocation visited/in-stack markers the unified
// DFS executor needs for cycle detection and at-most-once execution. A
// fresh buildState is created for each call to Context.Build so repeated
// builds within one process re-evaluate the rebuild oracle instead of
// trusting a prior run's memoized success.
type buildState struct {
	ctx *Context

	inStackTargets map[*Target]bool
	targetErr      map[*Target]error
	haveTargetErr  map[*Target]bool

	inStackCommands map[*Command]bool
}

func newBuildState(ctx *Context) *buildState {
	return &buildState{
		ctx:             ctx,
		inStackTargets:  make(map[*Target]bool),
		targetErr:       make(map[*Target]error),
		haveTargetErr:   make(map[*Target]bool),
		inStackCommands: make(map[*Command]bool),
	}
}

// Build runs the unified DFS executor over targets (or every registered
// target if none are named), building each dependency exactly once no
// matter how many targets share it, and returns the first error encountered.
func (ctx *Context) Build(targets ...*Target) error {
	if len(targets) == 0 {
		targets = ctx.targets
	}
	st := newBuildState(ctx)
	for _, t := range targets {
		if err := st.buildTarget(t); err != nil {
			return err
		}
	}
	if ctx.EmitCompileCommands {
		if err := ctx.writeCompileCommands(); err != nil {
			return err
		}
	}
	return nil
}

func (st *buildState) buildTarget(t *Target) error {
	if st.haveTargetErr[t] {
		return st.targetErr[t]
	}
	if st.inStackTargets[t] {
		return fmt.Errorf("cbuild: dependency cycle detected at target %q", t.Name)
	}
	st.inStackTargets[t] = true
	defer delete(st.inStackTargets, t)

	finish := func(err error) error {
		st.targetErr[t] = err
		st.haveTargetErr[t] = true
		return err
	}

	for _, c := range t.PreCommands {
		if err := st.runCommand(c); err != nil {
			return finish(err)
		}
	}
	for _, dep := range t.Deps {
		if err := st.buildTarget(dep); err != nil {
			return finish(err)
		}
	}
	if err := st.compileAndLink(t); err != nil {
		return finish(err)
	}
	for _, c := range t.PostCommands {
		if err := st.runCommand(c); err != nil {
			return finish(err)
		}
	}
	return finish(nil)
}

func (st *buildState) runCommand(c *Command) error {
	if c.executed {
		return c.exitErr
	}
	if st.inStackCommands[c] {
		return fmt.Errorf("cbuild: dependency cycle detected at command %q", c.Name)
	}
	st.inStackCommands[c] = true
	defer delete(st.inStackCommands, c)

	for _, dep := range c.Deps {
		if err := st.runCommand(dep); err != nil {
			c.executed = true
			c.exitErr = err
			return err
		}
	}
	if c.CommandLine != "" {
		_, err := runShell(c.CommandLine)
		c.executed = true
		c.exitErr = err
		if err != nil {
			errorf("command %s: %v", c.Name, err)
		}
		return err
	}
	c.executed = true
	return nil
}

// compileAndLink rebuilds t's stale sources in parallel and relinks it if
// needed, consulting the rebuild oracle so an up-to-date target is a no-op.
func (st *buildState) compileAndLink(t *Target) error {
	if t.Variant == Proxy {
		return nil
	}

	var toCompile []string
	for _, src := range t.Sources {
		if needsRecompile(t, src) {
			toCompile = append(toCompile, src)
		}
	}

	if len(toCompile) > 0 {
		if err := platform.MkdirTree(t.ObjDir); err != nil {
			return err
		}
	}

	printer := st.ctx.printer
	jobs := make([]schedule.Job, len(toCompile))
	for i, src := range toCompile {
		src := src
		jobs[i] = func() error {
			cmd := compileCommand(t, src)
			printer.Step("COMPILE", "%s", src)
			result, err := runShell(cmd)
			printer.Status(err == nil, "%s", src)
			if t.ctx.toolchain == ToolchainMSVC {
				if depErr := writeShowIncludesDepFile(t, src, result.CombinedOutput); depErr != nil {
					warnf("target %s: writing dep file for %s: %v", t.Name, src, depErr)
				}
			}
			return err
		}
	}
	if err := schedule.Run(st.ctx.Jobs, jobs); err != nil {
		return err
	}

	if len(toCompile) == 0 && !needsRelink(t) {
		return nil
	}

	if err := platform.MkdirTree(filepath.Dir(t.OutputFile)); err != nil {
		return err
	}

	var cmd, label string
	if t.Variant == StaticLibrary {
		cmd, label = staticLibCommand(t), "ARCHIVE"
	} else {
		cmd, label = linkCommand(t), "LINK"
	}
	printer.Step(label, "%s", t.OutputFile)
	_, err := runShell(cmd)
	printer.Status(err == nil, "%s", t.OutputFile)
	return err
}
