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

//go:build !windows

package platform

import (
	"fmt"
	"os"
	"syscall"
)

// ExecutablePath returns the path of the currently running executable by
// reading the /proc/self/exe symlink, falling back to argv[0] when that
// fails (e.g. non-Linux Unix without /proc).
func ExecutablePath(argv0 string) (string, error) {
	path, err := os.Readlink("/proc/self/exe")
	if err == nil {
		return path, nil
	}
	if argv0 == "" {
		return "", fmt.Errorf("executable path: %w", err)
	}
	return argv0, nil
}

// ReplaceProcess replaces the running process image with exe, passing argv
// and the current environment through, for the self-rebuild protocol.
func ReplaceProcess(exe string, argv []string) error {
	env := os.Environ()
	if err := syscall.Exec(exe, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", exe, err)
	}
	return nil // unreachable on success
}
