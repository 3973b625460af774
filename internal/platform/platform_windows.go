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

//go:build windows

package platform

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/windows"
)

// ExecutablePath returns the path of the currently running executable via
// GetModuleFileName, the Windows analogue of reading /proc/self/exe.
func ExecutablePath(argv0 string) (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 {
		if argv0 == "" {
			return "", fmt.Errorf("executable path: %w", err)
		}
		return argv0, nil
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// ReplaceProcess has no true process-image-replace primitive on Windows
// (no exec(2)); it spawns exe as a child, waits for it, and exits with its
// code, matching cbuild.h's _spawnv(_P_OVERLAY, ...) behavior closely enough
// for the self-rebuild protocol's purposes.
func ReplaceProcess(exe string, argv []string) error {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	cmd := exec.Command(exe, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("exec %s: %w", exe, err)
	}
	os.Exit(0)
	return nil // unreachable
}
