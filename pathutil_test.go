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

import "testing"

func TestJoinPath(t *testing.T) {
	if got := joinPath("build", "app"); got != "build/app" {
		t.Errorf("joinPath = %q", got)
	}
	if got := joinPath("", "app"); got != "app" {
		t.Errorf("joinPath with empty dir = %q, want app", got)
	}
}

func TestBaseName(t *testing.T) {
	if got := baseName("src/foo.c"); got != "foo" {
		t.Errorf("baseName = %q, want foo", got)
	}
}

func TestTrimExt(t *testing.T) {
	if got := trimExt("foo.c"); got != "foo" {
		t.Errorf("trimExt = %q, want foo", got)
	}
}
