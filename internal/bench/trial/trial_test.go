package trial

import (
	"math"
	"testing"

	"parcount/internal/bench/strategy"
)

// TestRunResultFields tests the shape of a single trial record.
func TestRunResultFields(t *testing.T) {
	st, _ := strategy.ByName("Atomic")

	r := New(4, 1000)
	res := r.Run(st)

	if res.Strategy != "Atomic" {
		t.Errorf("Strategy = %q, want Atomic", res.Strategy)
	}
	if res.FinalValue != 4000 {
		t.Errorf("FinalValue = %d, want 4000", res.FinalValue)
	}
	if res.Workers != 4 {
		t.Errorf("Workers = %d, want 4", res.Workers)
	}
	if res.Seconds <= 0 {
		t.Errorf("Seconds = %v, want > 0", res.Seconds)
	}
	if res.PerMillisecond <= 0 || math.IsInf(res.PerMillisecond, 0) || math.IsNaN(res.PerMillisecond) {
		t.Errorf("PerMillisecond = %v, want positive and finite", res.PerMillisecond)
	}
}

// TestRunThroughputFormula tests that throughput is derived from the
// observed final value: final × 1000 / seconds.
func TestRunThroughputFormula(t *testing.T) {
	st, _ := strategy.ByName("MutexLock")

	res := New(2, 5000).Run(st)

	want := float64(res.FinalValue) * 1000 / res.Seconds
	if res.PerMillisecond != want {
		t.Errorf("PerMillisecond = %v, want %v", res.PerMillisecond, want)
	}
}

// TestRunLocalCounterReduction tests that the runner performs the slot
// reduction so the record carries the summed total.
func TestRunLocalCounterReduction(t *testing.T) {
	st, _ := strategy.ByName("LocalCounter")

	res := New(4, 10000).Run(st)
	if res.FinalValue != 40000 {
		t.Errorf("LocalCounter FinalValue = %d, want 40000", res.FinalValue)
	}
}

// TestRunZeroIterations tests the I=0 edge: the trial completes with a
// zero final value and zero throughput instead of hanging or dividing
// into nonsense.
func TestRunZeroIterations(t *testing.T) {
	for _, st := range strategy.All() {
		res := New(3, 0).Run(st)
		if res.FinalValue != 0 {
			t.Errorf("%s FinalValue = %d with 0 iterations, want 0", st.Name, res.FinalValue)
		}
		if math.IsInf(res.PerMillisecond, 0) || math.IsNaN(res.PerMillisecond) {
			t.Errorf("%s PerMillisecond = %v with 0 iterations, want finite", st.Name, res.PerMillisecond)
		}
	}
}

// TestRunZeroWorkers tests the W=0 edge: nothing is spawned, nothing is
// counted, and the trial still terminates.
func TestRunZeroWorkers(t *testing.T) {
	st, _ := strategy.ByName("Atomic")

	res := New(0, 10000).Run(st)
	if res.FinalValue != 0 {
		t.Errorf("FinalValue = %d with 0 workers, want 0", res.FinalValue)
	}
}

// TestRunAllOrder tests that RunAll yields one record per strategy in the
// fixed harness order.
func TestRunAllOrder(t *testing.T) {
	want := []string{"RaceCondition", "MutexLock", "LockGuard", "Atomic", "LocalCounter"}

	results := New(2, 1000).RunAll()
	if len(results) != len(want) {
		t.Fatalf("RunAll() returned %d records, want %d", len(results), len(want))
	}
	for i, res := range results {
		if res.Strategy != want[i] {
			t.Errorf("RunAll()[%d].Strategy = %q, want %q", i, res.Strategy, want[i])
		}
	}
}

// TestRunTrialsIndependent tests that state does not leak across trials:
// a second run of the same synchronized strategy starts from zero and
// lands on the same exact value.
func TestRunTrialsIndependent(t *testing.T) {
	st, _ := strategy.ByName("LockGuard")

	r := New(4, 10000)
	first := r.Run(st)
	second := r.Run(st)

	if first.FinalValue != 40000 || second.FinalValue != 40000 {
		t.Errorf("FinalValue = %d then %d, want 40000 both times",
			first.FinalValue, second.FinalValue)
	}
}
