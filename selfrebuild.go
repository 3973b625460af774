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
	"os"

	"github.com/grant-wade/cbuild/internal/platform"
)

// SelfRebuild implements the self-rebuild protocol: if any file in
// sources is newer than the running driver executable, the driver rebuilds
// itself with buildCmd and replaces its own process image with the fresh
// binary, so a driver program that adds a new target definition to its own
// source picks that change up on the very next invocation without a
// separate bootstrap step. argv is the original os.Args, re-used verbatim
// for the replacement process.
//
// buildCmd must produce the new binary at the driver's own executable path;
// a typical value is "go build -o <path-to-self> .".
func SelfRebuild(sources []string, buildCmd string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("cbuild: SelfRebuild requires a non-empty argv")
	}
	exePath, err := platform.ExecutablePath(argv[0])
	if err != nil {
		return fmt.Errorf("cbuild: locating own executable: %w", err)
	}

	stale, err := selfIsStale(exePath, sources)
	if err != nil {
		return err
	}
	if !stale {
		return nil
	}

	oldPath := exePath + ".old"
	if platform.FileExists(oldPath) {
		if err := platform.RemoveFile(oldPath); err != nil {
			return fmt.Errorf("cbuild: removing stale %s: %w", oldPath, err)
		}
	}
	if err := os.Rename(exePath, oldPath); err != nil {
		return fmt.Errorf("cbuild: renaming running executable aside: %w", err)
	}

	if _, err := runShell(buildCmd); err != nil {
		// Restore the original binary so the driver is still runnable next
		// time even though this rebuild attempt failed.
		_ = os.Rename(oldPath, exePath)
		return fmt.Errorf("cbuild: self-rebuild failed: %w", err)
	}

	logf("cbuild: rebuilt driver from %d source(s), restarting", len(sources))
	return platform.ReplaceProcess(exePath, argv)
}

func selfIsStale(exePath string, sources []string) (bool, error) {
	exeTime := platform.ModTime(exePath)
	if exeTime < 0 {
		// No prior build to compare against; let the normal build path
		// create the binary instead of forcing a self-rebuild.
		return false, nil
	}
	for _, src := range sources {
		srcTime := platform.ModTime(src)
		if srcTime < 0 {
			continue
		}
		if srcTime > exeTime {
			return true, nil
		}
	}
	return false, nil
}
