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
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// runResult captures a completed shell invocation's combined output and exit
// status, modeled on a simple combined-output runner.
type runResult struct {
	CombinedOutput string
	ExitCode       int
}

// runShell runs commandLine through the host shell (cmd /C on Windows, sh -c
// otherwise), capturing combined stdout+stderr for diagnostics while also
// letting failures surface the output to the caller.
func runShell(commandLine string) (runResult, error) {
	return runShellIn("", commandLine)
}

// runShellIn is runShell with an explicit working directory, used to invoke
// a subproject's nested driver from its own directory.
func runShellIn(dir, commandLine string) (runResult, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", commandLine)
	} else {
		cmd = exec.Command("sh", "-c", commandLine)
	}
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	cmd.Env = os.Environ()

	err := cmd.Run()
	result := runResult{CombinedOutput: buf.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, fmt.Errorf("command %q: %w\n%s", commandLine, err, buf.String())
	}
	return result, nil
}
