// Package gate implements the start barrier that aligns worker launch times.
//
// Every worker in a trial spins on the gate before doing any counted work,
// and the trial runner opens the gate only after all workers have been
// spawned. This keeps goroutine spawn overhead out of the measured window
// and releases all workers as close to simultaneously as possible.
//
// The wait is a pure busy-spin on an atomically visible flag, not a channel
// or condition variable. A scheduler-level wait would reintroduce wake-up
// latency jitter into the first timed iterations, which is exactly what the
// gate exists to exclude.
package gate

import "sync/atomic"

// Gate releases all waiting workers at once.
//
// The zero value is a closed gate, ready for use. A Gate serves one trial
// at a time: Open releases the workers, Reset arms it again for the next
// trial. The flag is an atomic.Bool so that the open/closed state is
// visible across goroutines without a data race.
type Gate struct {
	open atomic.Bool
}

// Wait spins until the gate has been opened.
//
// Workers parked here burn CPU until Open is called. Goroutines in a tight
// loop are asynchronously preemptible, so the spin cannot starve the
// runner's call to Open.
func (g *Gate) Wait() {
	for !g.open.Load() {
	}
}

// Open releases every current and future waiter.
func (g *Gate) Open() {
	g.open.Store(true)
}

// Reset closes the gate again so the next trial's workers block on Wait.
//
// Reset must only be called after the previous trial's workers have been
// joined; closing the gate while workers are mid-loop is harmless but
// meaningless.
func (g *Gate) Reset() {
	g.open.Store(false)
}

// opened reports whether the gate is currently open. Only the package's
// own tests need to peek; workers and the runner go through Wait/Open/Reset.
func (g *Gate) opened() bool {
	return g.open.Load()
}
