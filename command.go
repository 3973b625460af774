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

// Command is a named shell invocation usable as a target's pre/post-command
// or as another command's dependency. Commands execute at most once per build
// regardless of how many targets depend on them; the unified graph executor
// in graph.go is what enforces that, using the executed/exitErr fields below
// as the memoization cell.
type Command struct {
	Name        string
	CommandLine string
	Deps        []*Command

	executed bool
	exitErr  error
}

// AddDependency records that dep must run, and succeed, before c runs.
func (c *Command) AddDependency(dep *Command) *Command {
	c.Deps = append(c.Deps, dep)
	return c
}
