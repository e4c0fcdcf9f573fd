package fmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/parallel"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

// blockCase pairs a scalar kernel with its block form for equivalence
// checks.
type blockCase struct {
	name   string
	scalar func(e *Engine, x float32) float32
	block  func(e *Engine, dst, src []float32)
	input  func(n int) []float32
}

func blockCases() []blockCase {
	return []blockCase{
		{
			name:   "sin",
			scalar: (*Engine).Sin,
			block:  (*Engine).SinBlock,
			input:  func(n int) []float32 { return testutil.DeterministicNoise(1, 1000, n) },
		},
		{
			name:   "cos",
			scalar: (*Engine).Cos,
			block:  (*Engine).CosBlock,
			input:  func(n int) []float32 { return testutil.DeterministicNoise(2, 1000, n) },
		},
		{
			name:   "exp",
			scalar: (*Engine).Exp,
			block:  (*Engine).ExpBlock,
			input:  func(n int) []float32 { return testutil.DeterministicNoise(3, 20, n) },
		},
		{
			name:   "log",
			scalar: (*Engine).Log,
			block:  (*Engine).LogBlock,
			input:  func(n int) []float32 { return testutil.LogRamp(1e-6, 1e6, n) },
		},
		{
			name:   "sqrt",
			scalar: (*Engine).Sqrt,
			block:  (*Engine).SqrtBlock,
			input:  func(n int) []float32 { return testutil.LogRamp(1e-6, 1e6, n) },
		},
		{
			name:   "rsqrt",
			scalar: (*Engine).Rsqrt,
			block:  (*Engine).RsqrtBlock,
			input:  func(n int) []float32 { return testutil.LogRamp(1e-6, 1e6, n) },
		},
		{
			name:   "rcp",
			scalar: (*Engine).Rcp,
			block:  (*Engine).RcpBlock,
			input:  func(n int) []float32 { return testutil.Ramp(-100, 100, n) },
		},
	}
}

func TestBlockMatchesScalar(t *testing.T) {
	e := New()
	const n = 1024

	for _, tc := range blockCases() {
		t.Run(tc.name, func(t *testing.T) {
			src := tc.input(n)
			want := make([]float32, n)
			for i := range src {
				want[i] = tc.scalar(e, src[i])
			}

			dst := make([]float32, n)
			tc.block(e, dst, src)
			testutil.RequireIdentical(t, dst, want)
		})
	}
}

func TestBlockInPlace(t *testing.T) {
	e := New()
	const n = 512

	for _, tc := range blockCases() {
		t.Run(tc.name, func(t *testing.T) {
			src := tc.input(n)
			want := make([]float32, n)
			tc.block(e, want, src)

			buf := make([]float32, n)
			copy(buf, src)
			tc.block(e, buf, buf)
			testutil.RequireIdentical(t, buf, want)
		})
	}
}

func TestBlockEmpty(t *testing.T) {
	e := New()
	for _, tc := range blockCases() {
		tc.block(e, nil, nil)
		tc.block(e, []float32{}, []float32{})
	}
}

func TestBlockLengthMismatchPanics(t *testing.T) {
	e := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on slice length mismatch")
		}
	}()
	e.SinBlock(make([]float32, 3), make([]float32, 4))
}

// The pooled executor must produce bit-identical output to the sequential
// one; only the partitioning differs.
func TestBlockParallelMatchesSequential(t *testing.T) {
	seq := New()
	par := New(WithWorkers(4))

	// Large enough that the pool actually forks.
	const n = 4 * parallel.MinChunk * 2

	for _, tc := range blockCases() {
		t.Run(tc.name, func(t *testing.T) {
			src := tc.input(n)
			want := make([]float32, n)
			tc.block(seq, want, src)

			got := make([]float32, n)
			tc.block(par, got, src)
			testutil.RequireIdentical(t, got, want)
		})
	}
}

func TestBlockParallelInPlace(t *testing.T) {
	par := New(WithWorkers(8))
	const n = 8 * parallel.MinChunk * 2

	src := testutil.DeterministicNoise(7, 1000, n)
	want := make([]float32, n)
	par.SinBlock(want, src)

	buf := make([]float32, n)
	copy(buf, src)
	par.SinBlock(buf, buf)
	testutil.RequireIdentical(t, buf, want)
}

func TestBlockNaNPropagates(t *testing.T) {
	e := New()
	nan := float32(math.NaN())
	src := []float32{1, nan, 2}

	dst := make([]float32, len(src))
	e.ExpBlock(dst, src)
	if !math.IsNaN(float64(dst[1])) {
		t.Fatalf("ExpBlock NaN slot = %v, want NaN", dst[1])
	}
	if math.IsNaN(float64(dst[0])) || math.IsNaN(float64(dst[2])) {
		t.Fatalf("ExpBlock leaked NaN into finite slots: %v", dst)
	}
}
