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
	"strings"

	"github.com/grant-wade/cbuild/internal/platform"
)

// writeCompileCommands emits compile_commands.json listing every
// source across every registered target with the exact command line that
// would compile it, so editor tooling sees the same flags the real build
// uses. Escaping is conservative: backslash, double quote and control
// characters are escaped; everything else passes through verbatim.
func (ctx *Context) writeCompileCommands() error {
	cwd, err := platform.Getwd()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("[\n")
	first := true
	for _, t := range ctx.targets {
		for _, src := range t.Sources {
			if !first {
				b.WriteString(",\n")
			}
			first = false
			fmt.Fprintf(&b, "  {\n    \"directory\": %s,\n    \"command\": %s,\n    \"file\": %s\n  }",
				jsonString(cwd), jsonString(compileCommand(t, src)), jsonString(src))
		}
	}
	b.WriteString("\n]\n")

	path := joinPath(ctx.OutputDir, "compile_commands.json")
	if err := platform.MkdirTree(ctx.OutputDir); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// jsonString renders s as a double-quoted JSON string literal.
func jsonString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
