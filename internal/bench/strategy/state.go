// Copyright 2025 The parcount Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"sync"
	"sync/atomic"

	"parcount/internal/bench/gate"
)

// State is the shared state of one trial.
//
// A fresh State is built per trial and handed by pointer to every worker,
// so nothing here is process-global: the lifetime of the counter, the
// mutex, the gate and the slots is exactly the lifetime of one trial.
//
// Shared carries no synchronization of its own. Whether access to it is
// coordinated is entirely the strategy's business: RaceCondition mutates
// it bare (the race is the demonstration), MutexLock and LockGuard mutate
// it under Mu, and LocalCounter only touches it during the single-threaded
// reduction after all workers have joined.
type State struct {
	// Gate aligns worker start times. Workers spin on it before the
	// first increment.
	Gate gate.Gate

	// Shared is the plain counter. Unprotected by construction.
	Shared int64

	// Counter is the inherently race-free counter used by the Atomic
	// strategy.
	Counter atomic.Int64

	// Mu protects Shared for the two lock-based strategies.
	Mu sync.Mutex

	// Slots holds one privately owned counter per worker, indexed by
	// worker id. Sized before spawn and never grown afterwards, so no
	// append during the parallel phase can move another worker's slot.
	Slots []int64
}

// NewState returns trial state for the given worker count, all counters
// zeroed and the gate closed.
func NewState(workers int) *State {
	return &State{Slots: make([]int64, workers)}
}

// Reduce folds the per-worker slots into Shared.
//
// Only meaningful for the LocalCounter strategy, and only after every
// worker has been joined: during the parallel phase the slots are owned
// by their workers and must not be read here.
func (s *State) Reduce() {
	for _, n := range s.Slots {
		s.Shared += n
	}
}
