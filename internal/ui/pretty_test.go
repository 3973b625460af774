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

package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterPlainNoColorsForNonFile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Step("COMPILE", "%s", "foo.c")
	p.Status(true, "%s", "libfoo.a")
	p.Warn("%s", "empty wildcard match")

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no ANSI escapes for a non-file writer, got %q", out)
	}
	for _, want := range []string{"COMPILE", "foo.c", "OK", "libfoo.a", "WARN", "empty wildcard match"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestPrinterStatusFail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Status(false, "%s", "link failed")
	if !strings.Contains(buf.String(), "FAIL") {
		t.Errorf("expected FAIL in output, got %q", buf.String())
	}
}
