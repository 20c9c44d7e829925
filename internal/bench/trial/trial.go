// Copyright 2025 The parcount Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trial orchestrates single benchmark trials.
//
// A trial runs one increment strategy across a set of worker goroutines
// and measures the wall-clock time from gate open to last join. Workers
// are created fresh for every trial and joined to completion — no pool, no
// reuse — so each trial's measurement is independent of the previous one.
package trial

import (
	"sync"
	"time"

	"parcount/internal/bench/strategy"
)

// Result is one trial's record, produced once and emitted immediately.
//
// PerMillisecond is computed from the observed final value, not from the
// number of increments attempted, so a lost-update trial reports its
// effective throughput on the degraded count.
type Result struct {
	Strategy       string  `json:"strategy"`
	FinalValue     int64   `json:"final_value"`
	Workers        int     `json:"workers"`
	PerMillisecond float64 `json:"increments_per_ms"`
	Seconds        float64 `json:"seconds"`
}

// Runner executes trials for one (workers, iterations) configuration.
type Runner struct {
	// Workers is the number of goroutines spawned per trial.
	Workers int

	// Iterations is the number of increments each worker performs.
	Iterations int
}

// New returns a Runner for the given configuration. Validation is the
// caller's job; the CLI rejects negative values before a Runner exists.
func New(workers, iterations int) *Runner {
	return &Runner{Workers: workers, Iterations: iterations}
}

// Run executes one trial of the given strategy.
//
// Sequence: build fresh trial state (counters zero, gate closed), spawn
// all workers, take the start timestamp, open the gate, join every worker
// (unbounded — the work is a bounded counting loop, so a timeout would
// only mask a real bug), run the slot reduction for strategies that need
// it, take the end timestamp, and derive the record.
//
// The reduction deliberately sits inside the timed window: it is part of
// the strategy's cost of producing a total, not bookkeeping.
func (r *Runner) Run(st strategy.Strategy) Result {
	s := strategy.NewState(r.Workers)

	var wg sync.WaitGroup
	for id := 0; id < r.Workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			st.Worker(s, id, r.Iterations)
		}(id)
	}

	start := time.Now()
	s.Gate.Open()
	wg.Wait()

	if st.NeedsReduce {
		s.Reduce()
	}
	elapsed := time.Since(start)

	final := st.Final(s)
	seconds := elapsed.Seconds()

	var perMS float64
	if seconds > 0 {
		perMS = float64(final) * 1000 / seconds
	}

	return Result{
		Strategy:       st.Name,
		FinalValue:     final,
		Workers:        r.Workers,
		PerMillisecond: perMS,
		Seconds:        seconds,
	}
}

// RunAll executes every registered strategy in its fixed order and
// returns the records in the same order.
func (r *Runner) RunAll() []Result {
	strategies := strategy.All()
	results := make([]Result, 0, len(strategies))
	for _, st := range strategies {
		results = append(results, r.Run(st))
	}
	return results
}
