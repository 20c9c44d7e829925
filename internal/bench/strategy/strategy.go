// Copyright 2025 The parcount Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strategy implements the five counter increment strategies.
//
// Every strategy performs the same abstract work — wait on the gate, then
// apply `iterations` increments against the trial state — and differs only
// in how (or whether) concurrent mutation is coordinated:
//
//	RaceCondition  unsynchronized read-modify-write on the shared counter
//	MutexLock      one explicit Lock/Unlock around the whole loop
//	LockGuard      same critical section, release guaranteed by defer
//	Atomic         hardware fetch-and-add per iteration, no lock
//	LocalCounter   private per-worker slot, summed after the join
//
// RaceCondition is deliberately racy. Its lost updates are the property
// being measured, so the bare Shared++ must not be "fixed" with a lock or
// an atomic.
package strategy

// Func is the work one worker performs during a trial, once per spawned
// goroutine. worker is the goroutine's id in [0, workers) and is only
// consulted by strategies that partition state per worker.
type Func func(s *State, worker, iterations int)

// Strategy pairs a worker function with the metadata the trial runner
// needs to extract the final counter value.
type Strategy struct {
	// Name is the strategy's reporting name, stable across releases
	// since it keys the output rows.
	Name string

	// Worker is executed by each worker goroutine.
	Worker Func

	// AtomicFinal marks strategies whose result lives in State.Counter
	// rather than State.Shared.
	AtomicFinal bool

	// NeedsReduce marks strategies that require the post-join slot
	// reduction before the final value is meaningful.
	NeedsReduce bool

	// Racy marks the one strategy whose final value is permitted to be
	// below workers × iterations.
	Racy bool
}

// Final reads the strategy's result out of trial state. For NeedsReduce
// strategies it must only be called after State.Reduce.
func (st Strategy) Final(s *State) int64 {
	if st.AtomicFinal {
		return s.Counter.Load()
	}
	return s.Shared
}

// raceCondition increments the shared counter with no synchronization at
// all. Concurrent workers interleave their read-modify-write sequences and
// overwrite each other's increments, so the final value is typically below
// workers × iterations.
func raceCondition(s *State, _, iterations int) {
	s.Gate.Wait()
	for n := 0; n < iterations; n++ {
		s.Shared++
	}
}

// mutexLock takes the mutex once, performs the whole increment loop inside
// the critical section, and releases it explicitly. Coarse-grained: lock
// overhead is paid once per worker, at the cost of fully serializing the
// workers' loops.
func mutexLock(s *State, _, iterations int) {
	s.Gate.Wait()
	s.Mu.Lock()
	for n := 0; n < iterations; n++ {
		s.Shared++
	}
	s.Mu.Unlock()
}

// lockGuard is the same critical section as mutexLock, but the release is
// guaranteed by defer on every exit path rather than by an explicit Unlock
// call. Under normal execution the two behave identically; the difference
// is the idiom, which matters the moment a panic or early return appears
// inside the critical section.
func lockGuard(s *State, _, iterations int) {
	s.Gate.Wait()
	s.Mu.Lock()
	defer s.Mu.Unlock()
	for n := 0; n < iterations; n++ {
		s.Shared++
	}
}

// atomicAdd performs one hardware fetch-and-add per iteration. No lock is
// involved; atomicity comes from the CPU instruction. Go's sync/atomic is
// sequentially consistent, which is stronger than this strategy strictly
// needs — the counter is the only shared state, and nothing orders against
// it — but Go deliberately offers no relaxed variant.
func atomicAdd(s *State, _, iterations int) {
	s.Gate.Wait()
	for n := 0; n < iterations; n++ {
		s.Counter.Add(1)
	}
}

// localCounter increments the worker's own slot, unsynchronized. Safe
// because no other worker ever touches that index: there is no shared
// mutable state during the parallel phase. The runner sums the slots into
// State.Shared after the join.
func localCounter(s *State, worker, iterations int) {
	s.Gate.Wait()
	for n := 0; n < iterations; n++ {
		s.Slots[worker]++
	}
}

// all lists the strategies in their fixed trial order.
var all = []Strategy{
	{Name: "RaceCondition", Worker: raceCondition, Racy: true},
	{Name: "MutexLock", Worker: mutexLock},
	{Name: "LockGuard", Worker: lockGuard},
	{Name: "Atomic", Worker: atomicAdd, AtomicFinal: true},
	{Name: "LocalCounter", Worker: localCounter, NeedsReduce: true},
}

// All returns the five strategies in the order trials run them:
// RaceCondition, MutexLock, LockGuard, Atomic, LocalCounter.
//
// The returned slice is a copy; callers may reorder or filter it.
func All() []Strategy {
	out := make([]Strategy, len(all))
	copy(out, all)
	return out
}

// ByName looks a strategy up by its reporting name.
func ByName(name string) (Strategy, bool) {
	for _, st := range all {
		if st.Name == name {
			return st, true
		}
	}
	return Strategy{}, false
}
