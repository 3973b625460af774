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

// Package schedule implements the parallel compile scheduler: a worker
// pool, sized to the configured job count, that drains a queue of compile
// jobs for a single target. Workers pull the next index from a shared
// counter under a mutex; a failure flag, checked between jobs, stops
// further dispatch once any job fails. A simplified, single-target bounded
// pool, using golang.org/x/sync/errgroup to join workers and propagate the
// first error instead of hand-rolled channels.
package schedule

import (
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of work (typically one source file's compile command).
type Job func() error

// Run dispatches jobs to a pool of at most jobCount workers. Workers pull
// the next job index from a shared, mutex-guarded counter; once any job
// returns an error, the shared failure flag is set and idle workers exit
// without starting new jobs. Run blocks until every worker has exited and
// returns the first error encountered, if any.
func Run(jobCount int, jobs []Job) error {
	if jobCount < 1 {
		jobCount = 1
	}
	if len(jobs) == 0 {
		return nil
	}
	if jobCount > len(jobs) {
		jobCount = len(jobs)
	}

	var (
		mu     sync.Mutex
		next   int
		failed int32
		g      errgroup.Group
	)

	glog.V(1).Infof("schedule: dispatching %d jobs across %d workers", len(jobs), jobCount)

	for w := 0; w < jobCount; w++ {
		g.Go(func() error {
			for {
				if atomic.LoadInt32(&failed) != 0 {
					return nil
				}
				mu.Lock()
				if next >= len(jobs) {
					mu.Unlock()
					return nil
				}
				idx := next
				next++
				mu.Unlock()

				if err := jobs[idx](); err != nil {
					atomic.StoreInt32(&failed, 1)
					return err
				}
			}
		})
	}
	return g.Wait()
}
