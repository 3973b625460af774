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

// Package ui prints the build's step/status lines, colorizing them when the
// destination is a real terminal. Grounded on cbuild.h's
// cbuild_pretty_step/cbuild_pretty_status ANSI helpers, with the TTY check
// done through go-isatty instead of assuming a POSIX terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorRed     = "\033[31m"
)

// Printer writes build step/status lines to an io.Writer, colorizing only
// when that writer is a terminal.
type Printer struct {
	w      io.Writer
	colors bool
}

// NewPrinter returns a Printer writing to w. Pass os.Stdout to get the same
// auto-detection the CLI uses.
func NewPrinter(w io.Writer) *Printer {
	colors := false
	if f, ok := w.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{w: w, colors: colors}
}

func (p *Printer) color(c string) string {
	if !p.colors {
		return ""
	}
	return c
}

// Step prints a labeled build step, e.g. "COMPILE    foo.c".
func (p *Printer) Step(label, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%-10s%s ", p.color(colorBlue), label, p.color(colorReset))
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

// Status prints a pass/fail status line.
func (p *Printer) Status(ok bool, format string, args ...interface{}) {
	if ok {
		fmt.Fprintf(p.w, "%s%s%s ", p.color(colorGreen), "OK", p.color(colorReset))
	} else {
		fmt.Fprintf(p.w, "%s%s%s ", p.color(colorRed), "FAIL", p.color(colorReset))
	}
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

// Warn prints a yellow warning line.
func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s%s ", p.color(colorYellow), "WARN", p.color(colorReset))
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}
