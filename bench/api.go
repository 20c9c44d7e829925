// Package bench provides the public API for the parcount benchmark harness.
//
// See doc.go for detailed documentation and examples.
package bench

import (
	"fmt"

	"parcount/internal/bench/strategy"
	"parcount/internal/bench/trial"
)

// Result is one trial's outcome.
type Result struct {
	// Strategy is the strategy's reporting name.
	Strategy string

	// FinalValue is the counter total observed after all workers joined
	// (and, for LocalCounter, after the reduction).
	FinalValue int64

	// Workers is the number of worker goroutines the trial spawned.
	Workers int

	// PerMillisecond is FinalValue × 1000 / Seconds. It is computed from
	// the observed final value, not the increments attempted.
	PerMillisecond float64

	// Seconds is the wall-clock trial duration, gate open to last join.
	Seconds float64
}

// Run executes all five strategies in their fixed order — RaceCondition,
// MutexLock, LockGuard, Atomic, LocalCounter — against one shared
// (workers, iterations) configuration and returns one Result per trial.
//
// Every trial gets fresh state and fresh workers; nothing carries over
// between strategies. Negative counts are rejected.
func Run(workers, iterations int) ([]Result, error) {
	if err := check(workers, iterations); err != nil {
		return nil, err
	}

	r := trial.New(workers, iterations)
	strategies := strategy.All()
	out := make([]Result, 0, len(strategies))
	for _, st := range strategies {
		out = append(out, fromTrial(r.Run(st)))
	}
	return out, nil
}

// RunStrategy executes a single named trial. Valid names are returned by
// [Strategies].
func RunStrategy(name string, workers, iterations int) (Result, error) {
	if err := check(workers, iterations); err != nil {
		return Result{}, err
	}

	st, ok := strategy.ByName(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown strategy %q", name)
	}
	return fromTrial(trial.New(workers, iterations).Run(st)), nil
}

// Strategies returns the strategy names in trial order.
func Strategies() []string {
	strategies := strategy.All()
	names := make([]string, len(strategies))
	for i, st := range strategies {
		names[i] = st.Name
	}
	return names
}

func check(workers, iterations int) error {
	if workers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", workers)
	}
	if iterations < 0 {
		return fmt.Errorf("iteration count must not be negative, got %d", iterations)
	}
	return nil
}

func fromTrial(res trial.Result) Result {
	return Result{
		Strategy:       res.Strategy,
		FinalValue:     res.FinalValue,
		Workers:        res.Workers,
		PerMillisecond: res.PerMillisecond,
		Seconds:        res.Seconds,
	}
}
