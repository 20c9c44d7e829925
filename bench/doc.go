// Package bench provides the public API for the parcount benchmark harness.
//
// parcount measures five strategies for incrementing a shared counter from
// concurrent workers. Each strategy is run as one trial: a set of worker
// goroutines is spawned, held on a busy-spin start gate so that spawn
// overhead stays out of the measurement, released simultaneously, and
// joined; the trial yields the final counter value and the elapsed time.
//
// # Quick Start
//
//	results, err := bench.Run(8, 100000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range results {
//		fmt.Printf("%s: %d in %.4fs\n", r.Strategy, r.FinalValue, r.Seconds)
//	}
//
// # The strategies
//
// In trial order:
//
//   - RaceCondition: bare unsynchronized increments. The final value is
//     expected to fall short of workers × iterations under contention;
//     the lost updates are the demonstration.
//   - MutexLock: each worker takes one explicit Lock/Unlock around its
//     whole loop, serializing the workers.
//   - LockGuard: the same critical section, but released via defer —
//     Go's guaranteed-release-on-every-exit-path idiom.
//   - Atomic: one hardware fetch-and-add per increment, no lock.
//   - LocalCounter: each worker counts in a private slot; the slots are
//     summed single-threaded after the join.
//
// The four synchronized strategies always produce exactly
// workers × iterations. Throughput is reported against the observed final
// value, so a lost-update trial reports its effective, degraded rate.
//
// # API Overview
//
//   - Run all trials: [Run]
//   - Run one strategy: [RunStrategy], names via [Strategies]
//   - Version information: [GetInfo], [Version]
package bench
