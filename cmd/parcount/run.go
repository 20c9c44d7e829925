// run.go implements the 'parcount run' command.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/gops/agent"

	"parcount/internal/bench/report"
	"parcount/internal/bench/strategy"
	"parcount/internal/bench/trial"
)

const (
	defaultWorkers    = 4
	defaultIterations = 10000
)

// runConfig holds the parsed configuration for one benchmark invocation.
type runConfig struct {
	workers    int
	iterations int
	format     report.Format
	debugAgent bool
}

// parseRunArgs parses the run command's arguments.
//
// The flag handling deliberately mirrors the tool's original contract
// rather than stdlib flag semantics:
//
//   - -t and -i take the next token as their value
//   - if either flag repeats, the last occurrence wins
//   - a -t or -i with no following token is silently ignored
//   - non-numeric values degrade to 0, they are not an error
//   - unrecognized tokens are skipped
//
// Negative values are the one thing rejected outright: a negative worker
// or iteration count has no meaning anywhere downstream.
func parseRunArgs(args []string) (*runConfig, error) {
	cfg := &runConfig{
		workers:    defaultWorkers,
		iterations: defaultIterations,
		format:     report.TSV,
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-t":
			if i+1 >= len(args) {
				continue // trailing flag, no value to consume
			}
			i++
			cfg.workers = atoi(args[i])
		case "-i":
			if i+1 >= len(args) {
				continue
			}
			i++
			cfg.iterations = atoi(args[i])
		case "-json":
			cfg.format = report.JSON
		case "-debug":
			cfg.debugAgent = true
		}
	}

	if cfg.workers < 0 {
		return nil, fmt.Errorf("worker count must not be negative, got %d", cfg.workers)
	}
	if cfg.iterations < 0 {
		return nil, fmt.Errorf("iteration count must not be negative, got %d", cfg.iterations)
	}
	return cfg, nil
}

// atoi converts with atoi-style tolerance: any parse failure yields 0.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// runCommand implements the 'parcount run' command.
//
// It runs the five strategies in their fixed order against one shared
// (workers, iterations) configuration and streams one record per trial to
// stdout, each emitted as soon as its trial completes.
func runCommand(args []string) {
	cfg, err := parseRunArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.debugAgent {
		// Lets `gops stack`/`gops pprof-cpu` attach while the
		// benchmark spins.
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: starting gops agent: %v\n", err)
			os.Exit(1)
		}
		defer agent.Close()
	}

	w := report.NewWriter(os.Stdout, cfg.format)
	if err := w.Begin(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := trial.New(cfg.workers, cfg.iterations)
	for _, st := range strategy.All() {
		if err := w.Write(r.Run(st)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
