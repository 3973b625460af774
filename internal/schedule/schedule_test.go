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

package schedule

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunAllSucceed(t *testing.T) {
	var ran int32
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = func() error {
			atomic.AddInt32(&ran, 1)
			return nil
		}
	}
	if err := Run(4, jobs); err != nil {
		t.Fatalf("Run returned %v, want nil", err)
	}
	if int(ran) != len(jobs) {
		t.Errorf("ran %d jobs, want %d", ran, len(jobs))
	}
}

func TestRunEmptyJobsNoop(t *testing.T) {
	if err := Run(4, nil); err != nil {
		t.Errorf("Run(nil) = %v, want nil", err)
	}
}

func TestRunStopsOnFirstFailure(t *testing.T) {
	wantErr := errors.New("boom")
	var started int32
	jobs := make([]Job, 50)
	for i := range jobs {
		i := i
		jobs[i] = func() error {
			atomic.AddInt32(&started, 1)
			if i == 0 {
				return wantErr
			}
			return nil
		}
	}
	err := Run(1, jobs)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() = %v, want %v", err, wantErr)
	}
	// With a single worker and job 0 failing immediately, no further jobs
	// should have started.
	if started != 1 {
		t.Errorf("started = %d, want 1", started)
	}
}

func TestRunJobCountClampedToAtLeastOne(t *testing.T) {
	var ran int32
	jobs := []Job{func() error { atomic.AddInt32(&ran, 1); return nil }}
	if err := Run(0, jobs); err != nil {
		t.Fatalf("Run(0, ...) = %v", err)
	}
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}
