// Package testutil holds assertions shared by the numerical package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is negative or NaN.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= 0) {
			t.Fatalf("index %d: negative value %v", i, v)
		}
	}
}

// RequireRelNear fails t if got deviates from want by more than rel
// (relative to want).
func RequireRelNear(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if d := RelDiff(got, want); !(d <= rel) {
		t.Fatalf("%s = %v, want %v (relative deviation %.3g > %.3g)", name, got, want, d, rel)
	}
}

// RelDiff returns |got/want − 1|, or |got| when want is zero.
func RelDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got/want - 1)
}

// MaxRelDiff returns the maximum relative difference between got and want.
// Returns an error if the slices differ in length.
func MaxRelDiff(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxDiff := 0.0
	for i := range got {
		d := RelDiff(got[i], want[i])
		if d > maxDiff || math.IsNaN(d) {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// LogSlope returns d ln y / d ln x between two points.
func LogSlope(x1, y1, x2, y2 float64) float64 {
	return math.Log(y2/y1) / math.Log(x2/x1)
}
