// verify.go implements the 'parcount verify' command.
package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"parcount/internal/bench/report"
	"parcount/internal/bench/strategy"
	"parcount/internal/bench/trial"
)

// verifyCommand implements the 'parcount verify' command.
//
// It checks every strategy's correctness contract at the given
// configuration: the four synchronized strategies must land on exactly
// workers × iterations, and RaceCondition must never exceed it. Timing is
// irrelevant here, so the per-strategy checks run concurrently — each one
// gets its own trial state and gate, so they cannot interfere.
func verifyCommand(args []string) {
	cfg, err := parseVerifyArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := verifyAll(cfg.workers, cfg.iterations); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ok\t%d workers\t%d iterations\n", cfg.workers, cfg.iterations)
}

// parseVerifyArgs parses verify's arguments: the same -t/-i contract as
// run, but the run-only output and diagnostic flags are errors here, not
// silently accepted no-ops.
func parseVerifyArgs(args []string) (*runConfig, error) {
	cfg, err := parseRunArgs(args)
	if err != nil {
		return nil, err
	}
	if cfg.format != report.TSV {
		return nil, fmt.Errorf("-json is not a verify flag")
	}
	if cfg.debugAgent {
		return nil, fmt.Errorf("-debug is not a verify flag")
	}
	return cfg, nil
}

// verifyAll runs one trial per strategy and returns the first contract
// violation found, or nil if every strategy counted as promised.
func verifyAll(workers, iterations int) error {
	want := int64(workers) * int64(iterations)

	var g errgroup.Group
	for _, st := range strategy.All() {
		g.Go(func() error {
			res := trial.New(workers, iterations).Run(st)

			if st.Racy {
				// Lost updates may only ever undercount.
				if res.FinalValue > want {
					return fmt.Errorf("%s: final value %d exceeds %d",
						st.Name, res.FinalValue, want)
				}
				return nil
			}
			if res.FinalValue != want {
				return fmt.Errorf("%s: final value %d, want exactly %d",
					st.Name, res.FinalValue, want)
			}
			return nil
		})
	}
	return g.Wait()
}
