package main

import "testing"

// TestVerifyAll tests that the stock strategies satisfy their contracts
// at a contended configuration.
func TestVerifyAll(t *testing.T) {
	if err := verifyAll(4, 20000); err != nil {
		t.Errorf("verifyAll(4, 20000) = %v, want nil", err)
	}
}

// TestVerifyAllSingleWorker tests the no-contention case, where even the
// racy strategy must count exactly.
func TestVerifyAllSingleWorker(t *testing.T) {
	if err := verifyAll(1, 5); err != nil {
		t.Errorf("verifyAll(1, 5) = %v, want nil", err)
	}
}

// TestVerifyAllZeroIterations tests the I=0 edge: every strategy lands on
// exactly zero.
func TestVerifyAllZeroIterations(t *testing.T) {
	if err := verifyAll(3, 0); err != nil {
		t.Errorf("verifyAll(3, 0) = %v, want nil", err)
	}
}

// TestParseVerifyArgs tests that verify shares run's -t/-i contract but
// rejects the run-only flags instead of swallowing them.
func TestParseVerifyArgs(t *testing.T) {
	cfg, err := parseVerifyArgs([]string{"-t", "8", "-i", "500"})
	if err != nil {
		t.Fatalf("parseVerifyArgs(-t 8 -i 500) error: %v", err)
	}
	if cfg.workers != 8 || cfg.iterations != 500 {
		t.Errorf("config = (%d, %d), want (8, 500)", cfg.workers, cfg.iterations)
	}

	if _, err := parseVerifyArgs([]string{"-json"}); err == nil {
		t.Error("parseVerifyArgs(-json) error = nil, want error")
	}
	if _, err := parseVerifyArgs([]string{"-debug"}); err == nil {
		t.Error("parseVerifyArgs(-debug) error = nil, want error")
	}
}
