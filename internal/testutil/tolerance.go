package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps (absolute
// tolerance). Matching infinities and matching NaNs compare equal.
func RequireNear(t *testing.T, got, want float32, eps float64) {
	t.Helper()
	if !near(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireNearRel fails t if got and want differ by more than eps relative to
// |want|. For |want| below 1 the comparison degrades to absolute tolerance.
func RequireNearRel(t *testing.T, got, want float32, eps float64) {
	t.Helper()
	scale := math.Abs(float64(want))
	if scale < 1 {
		scale = 1
	}
	if !near(got, want, eps*scale) {
		t.Fatalf("got %v, want %v (rel eps %v)", got, want, eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or if any element
// pair exceeds eps (absolute tolerance).
func RequireSliceNear(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !near(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireIdentical fails t if got and want differ in length or in the bit
// pattern of any element. Unlike RequireSliceNear this distinguishes signed
// zeros and compares NaNs by payload.
func RequireIdentical(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v (%#08x), want %v (%#08x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func near(got, want float32, eps float64) bool {
	g, w := float64(got), float64(want)
	if math.IsNaN(w) {
		return math.IsNaN(g)
	}
	if math.IsInf(w, 1) {
		return math.IsInf(g, 1)
	}
	if math.IsInf(w, -1) {
		return math.IsInf(g, -1)
	}
	return math.Abs(g-w) <= eps
}
