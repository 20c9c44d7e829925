package bench_test

import (
	"fmt"

	"parcount/bench"
)

// Example demonstrates running the full trial sequence.
// Final values and timings vary per run, so only the order is printed.
func Example() {
	results, err := bench.Run(4, 1000)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, r := range results {
		fmt.Println(r.Strategy)
	}

	// Output:
	// RaceCondition
	// MutexLock
	// LockGuard
	// Atomic
	// LocalCounter
}

// ExampleRunStrategy demonstrates a single synchronized trial, whose
// final value is deterministic: workers × iterations exactly.
func ExampleRunStrategy() {
	result, err := bench.RunStrategy("Atomic", 2, 100)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(result.Strategy, result.FinalValue)

	// Output:
	// Atomic 200
}
