// Package main implements the parcount CLI tool.
//
// parcount benchmarks five strategies for incrementing a shared counter
// from concurrent workers, measuring both correctness (the final counter
// value) and effective throughput. The five strategies, run in fixed
// order, are:
//
//  1. RaceCondition - unsynchronized increments (demonstrates lost updates)
//  2. MutexLock     - one explicit lock/unlock around each worker's loop
//  3. LockGuard     - same critical section, release guaranteed by defer
//  4. Atomic        - hardware fetch-and-add per increment
//  5. LocalCounter  - private per-worker counters, summed after the join
//
// Usage:
//
//	parcount run -t 8 -i 100000   # Benchmark with 8 workers
//	parcount verify -t 8          # Check the synchronized strategies
//	parcount -t 8 -i 100000       # Bare flags imply 'run'
//
// This is the CLI entry point; the harness itself lives in internal/bench.
package main

import (
	"fmt"
	"os"
	"strings"

	"parcount/bench"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		runCommand(nil)
		return
	}

	switch args[0] {
	case "run":
		runCommand(args[1:])
	case "verify":
		verifyCommand(args[1:])
	case "version", "--version":
		fmt.Printf("parcount version %s\n", bench.Version)
	case "help", "--help", "-h":
		printUsage()
	default:
		// Bare flags keep the historical invocation working:
		// `parcount -t 8 -i 100000` is `parcount run -t 8 -i 100000`.
		if strings.HasPrefix(args[0], "-") {
			runCommand(args)
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`parcount - shared counter concurrency benchmark

USAGE:
    parcount <command> [arguments]

COMMANDS:
    run        Run the five increment strategy trials (default)
    verify     Check that the synchronized strategies count exactly
    version    Show version information
    help       Show this help message

RUN FLAGS:
    -t <int>   Workers per trial (default 4)
    -i <int>   Increments per worker (default 10000)
    -json      Emit records as JSON lines instead of a table
    -debug     Serve a gops diagnostics agent while running

EXAMPLES:
    # Default configuration: 4 workers x 10000 increments
    parcount run

    # Crank contention up and watch RaceCondition lose updates
    parcount run -t 16 -i 1000000

    # Machine-readable output
    parcount run -t 8 -json

    # Fail with exit code 1 if any synchronized strategy miscounts
    parcount verify -t 8 -i 100000

OUTPUT:
    One header line, then one tab-separated line per strategy:
    name, final counter value, workers, increments/millisecond, seconds.

    The four synchronized strategies always report exactly t*i. The
    RaceCondition strategy is expected to report less under contention -
    its lost updates are the point of the demonstration, and throughput
    is computed from the observed (degraded) count.

`)
}

// runCommand is implemented in run.go
// verifyCommand is implemented in verify.go
