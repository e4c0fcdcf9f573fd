package fmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestRsqrtKnownValues(t *testing.T) {
	e := New()
	testutil.RequireNear(t, e.Rsqrt(4), 0.5, 1e-3)
	testutil.RequireNear(t, e.Rsqrt(1), 1, 2e-3)
	testutil.RequireNear(t, e.Rsqrt(0.25), 2, 4e-3)
}

func TestSqrtKnownValues(t *testing.T) {
	e := New()
	testutil.RequireNear(t, e.Sqrt(4), 2, 4e-3)
	testutil.RequireNear(t, e.Sqrt(9), 3, 6e-3)
	testutil.RequireNear(t, e.Sqrt(2), float32(math.Sqrt2), 3e-3)
}

func TestRsqrtRoundTrip(t *testing.T) {
	e := New()
	for _, x := range testutil.LogRamp(1e-6, 1e6, 5000) {
		// One Newton-Raphson step leaves up to ~1.75e-3 relative error in y,
		// which doubles through the square.
		y := float64(e.Rsqrt(x))
		if rel := math.Abs(y*y*float64(x) - 1); rel > 4e-3 {
			t.Fatalf("Rsqrt(%v)²·x deviates from 1 by %v", x, rel)
		}
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	e := New()
	for _, x := range testutil.LogRamp(1e-6, 1e6, 5000) {
		y := float64(e.Sqrt(x))
		if rel := math.Abs(y*y-float64(x)) / float64(x); rel > 4e-3 {
			t.Fatalf("Sqrt(%v)² deviates from x by rel %v", x, rel)
		}
	}
}

func TestRsqrtDomain(t *testing.T) {
	e := New()
	if got := e.Rsqrt(0); !math.IsInf(float64(got), 1) {
		t.Fatalf("Rsqrt(0) = %v, want +Inf", got)
	}
	if got := e.Rsqrt(float32(math.Copysign(0, -1))); !math.IsInf(float64(got), 1) {
		t.Fatalf("Rsqrt(-0) = %v, want +Inf", got)
	}
	if got := e.Rsqrt(-1); !math.IsNaN(float64(got)) {
		t.Fatalf("Rsqrt(-1) = %v, want NaN", got)
	}
}

func TestSqrtDomain(t *testing.T) {
	e := New()
	if got := e.Sqrt(0); got != 0 {
		t.Fatalf("Sqrt(0) = %v, want 0", got)
	}
	if got := e.Sqrt(float32(math.Copysign(0, -1))); got != 0 {
		t.Fatalf("Sqrt(-0) = %v, want 0", got)
	}
	if got := e.Sqrt(-4); !math.IsNaN(float64(got)) {
		t.Fatalf("Sqrt(-4) = %v, want NaN", got)
	}
}

func TestRsqrtNaNPropagates(t *testing.T) {
	e := New()
	if got := e.Rsqrt(float32(math.NaN())); !math.IsNaN(float64(got)) {
		t.Fatalf("Rsqrt(NaN) = %v, want NaN", got)
	}
	if got := e.Sqrt(float32(math.NaN())); !math.IsNaN(float64(got)) {
		t.Fatalf("Sqrt(NaN) = %v, want NaN", got)
	}
}
