// Package testutil provides shared assertions for throughput tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any sample pair differs by more than eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("sample %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, s []float64) {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d: non-finite value %v", i, v)
		}
	}
}

// UnitRangeViolation returns the index of the first sample that is NaN or
// outside [0, 1], and whether one exists.
func UnitRangeViolation(s []float64) (int, bool) {
	for i, v := range s {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return i, true
		}
	}
	return 0, false
}

// RequireUnitRange fails t if any sample falls outside [0, 1]. Throughputs
// and transmissions are fractions of incident light.
func RequireUnitRange(t *testing.T, s []float64) {
	t.Helper()
	if i, bad := UnitRangeViolation(s); bad {
		t.Fatalf("sample %d: %v outside [0, 1]", i, s[i])
	}
}
