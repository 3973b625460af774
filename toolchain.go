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
	"runtime"
	"strings"
)

// ToolchainFamily selects the command-line dialect used for compiling,
// archiving and linking: MSVC's cl.exe/lib.exe, a Unix-style gcc/clang
// driver, or Apple's clang, which shares gcc-style compile flags but
// differs in how it names libraries at link time: use -lfoo, never
// -lfoo.dylib.
type ToolchainFamily int

const (
	ToolchainUnix ToolchainFamily = iota
	ToolchainMSVC
	ToolchainAppleClang
)

func (t ToolchainFamily) String() string {
	switch t {
	case ToolchainMSVC:
		return "msvc"
	case ToolchainAppleClang:
		return "apple-clang"
	default:
		return "unix"
	}
}

// detectToolchain infers the toolchain family from the configured compiler
// name and the host platform. An explicit cl/cl.exe compiler always selects
// MSVC regardless of host, which keeps cross-compiling setups (e.g. cl.exe
// under wine) predictable; otherwise macOS hosts get Apple clang semantics
// and everything else gets the Unix gcc/clang dialect.
func detectToolchain(compiler string) ToolchainFamily {
	base := strings.ToLower(compiler)
	if base == "cl" || base == "cl.exe" || strings.HasSuffix(base, "/cl") || strings.HasSuffix(base, "/cl.exe") ||
		strings.HasSuffix(base, "\\cl") || strings.HasSuffix(base, "\\cl.exe") {
		return ToolchainMSVC
	}
	if runtime.GOOS == "windows" && !strings.Contains(base, "clang") && !strings.Contains(base, "gcc") {
		return ToolchainMSVC
	}
	if runtime.GOOS == "darwin" {
		return ToolchainAppleClang
	}
	return ToolchainUnix
}

// defaultArchiver returns the archiver invoked to build a static library for
// the given toolchain family.
func defaultArchiver(t ToolchainFamily) string {
	if t == ToolchainMSVC {
		return "lib"
	}
	return "ar"
}

// defaultLinker returns the link driver; all three families link through the
// compiler driver itself rather than a separate linker binary, matching
// cbuild.h's behavior of reusing CC to link.
func defaultLinker(compiler string) string {
	return compiler
}
