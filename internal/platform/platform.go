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

// Package platform collects the filesystem, process and OS predicates the
// build engine needs but does not want scattered through its packages: file
// existence checks, recursive delete, directory-tree creation, CPU count and
// (per-OS) the running executable's path.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/glog"
)

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// DirExists reports whether path names a directory.
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// ModTime returns the modification time of path as a Unix timestamp, or -1
// if path does not exist.
func ModTime(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return fi.ModTime().Unix()
}

// MkdirTree creates path and any missing parents; a path that already
// exists is not an error.
func MkdirTree(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// RemoveFile removes path if present; a missing file is not an error.
func RemoveFile(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// RemoveAll recursively deletes path (file or directory tree). A missing
// path is not an error.
func RemoveAll(path string) error {
	if path == "" {
		return nil
	}
	glog.V(1).Infof("platform: removing %s", path)
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove all %s: %w", path, err)
	}
	return nil
}

// Getwd returns the current working directory.
func Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return wd, nil
}

// NumCPU returns the detected logical CPU count, never less than 1. No
// ecosystem library improves on runtime.NumCPU for this; see DESIGN.md.
func NumCPU() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// JoinPath joins path elements with the OS separator, collapsing redundant
// separators the way filepath.Join does, kept here so callers that want the
// platform package's vocabulary don't also need path/filepath directly.
func JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}
