// Command fmathbench times the fast approximation kernels against the
// standard library and the float64 algo-approx routines on random inputs.
//
// Usage:
//
//	fmathbench [flags] [kernel-name ...]
//
// Without arguments it benchmarks all seven kernels.
//
// Examples:
//
//	fmathbench sin exp
//	fmathbench -n 1000000 -workers 8
//	fmathbench -table-bits 14 sin cos
//	fmathbench -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-fastmath/fmath"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/meko-christian/algo-approx"
)

type kernelEntry struct {
	name  string
	fill  func(rng *rand.Rand, n int) []float32
	block func(e *fmath.Engine, dst, src []float32)
	std   func(float64) float64
	fast  func(float64) float64 // algo-approx equivalent, nil if none
}

var kernels = []kernelEntry{
	{
		name:  "sin",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillRange(rng, n, -1000, 1000) },
		block: func(e *fmath.Engine, dst, src []float32) { e.SinBlock(dst, src) },
		std:   math.Sin,
	},
	{
		name:  "cos",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillRange(rng, n, -1000, 1000) },
		block: func(e *fmath.Engine, dst, src []float32) { e.CosBlock(dst, src) },
		std:   math.Cos,
	},
	{
		name:  "exp",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillRange(rng, n, -10, 10) },
		block: func(e *fmath.Engine, dst, src []float32) { e.ExpBlock(dst, src) },
		std:   math.Exp,
		fast:  approx.FastExp[float64],
	},
	{
		name:  "log",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillPositive(rng, n, 1e-6, 1e6) },
		block: func(e *fmath.Engine, dst, src []float32) { e.LogBlock(dst, src) },
		std:   math.Log,
		fast:  approx.FastLog[float64],
	},
	{
		name:  "sqrt",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillPositive(rng, n, 1e-6, 1e6) },
		block: func(e *fmath.Engine, dst, src []float32) { e.SqrtBlock(dst, src) },
		std:   math.Sqrt,
		fast:  approx.FastSqrt[float64],
	},
	{
		name:  "rsqrt",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillPositive(rng, n, 1e-6, 1e6) },
		block: func(e *fmath.Engine, dst, src []float32) { e.RsqrtBlock(dst, src) },
		std:   func(x float64) float64 { return 1 / math.Sqrt(x) },
	},
	{
		name:  "rcp",
		fill:  func(rng *rand.Rand, n int) []float32 { return fillNonzero(rng, n, 1e-3, 1e6) },
		block: func(e *fmath.Engine, dst, src []float32) { e.RcpBlock(dst, src) },
		std:   func(x float64) float64 { return 1 / x },
	},
}

func main() {
	n := flag.Int("n", 8_000_000, "number of elements per timing loop")
	workers := flag.Int("workers", 0, "worker goroutines for block dispatch (0 = sequential)")
	tableBits := flag.Int("table-bits", 12, "sine table resolution exponent (2^bits samples)")
	seed := flag.Int64("seed", 1, "random input seed")
	list := flag.Bool("list", false, "list available kernel names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fmathbench [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Times the fast approximation kernels against the standard library.\n")
		fmt.Fprintf(os.Stderr, "Without arguments all kernels are benchmarked.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, k := range kernels {
			fmt.Println(k.name)
		}
		return
	}

	selected, err := selectKernels(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []fmath.Option{fmath.WithTableBits(*tableBits)}
	if *workers > 0 {
		opts = append(opts, fmath.WithWorkers(*workers))
	}
	engine := fmath.New(opts...)
	engine.Init()

	features := cpu.DetectFeatures()
	fmt.Printf("cpu: %s (%s), GOMAXPROCS=%d\n", features.Architecture, simdFlags(features), runtime.GOMAXPROCS(0))
	fmt.Printf("n=%d workers=%d table=%d samples\n\n", *n, *workers, engine.TableSize())

	rng := rand.New(rand.NewSource(*seed))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "kernel\tfmath\tstdlib\tspeedup\talgo-approx\t")

	for _, k := range selected {
		src := k.fill(rng, *n)
		dst := make([]float32, *n)

		// Warm-up pass so table construction and page faults stay out of
		// the timed loops.
		k.block(engine, dst, src)

		tFast := timeBlock(func() { k.block(engine, dst, src) })
		tStd := timeStd(dst, src, k.std)

		approxCol := "-"
		if k.fast != nil {
			tApprox := timeStd(dst, src, k.fast)
			approxCol = fmt.Sprintf("%.2f ns/op", tApprox/float64(*n))
		}

		fmt.Fprintf(w, "%s\t%.2f ns/op\t%.2f ns/op\t%.2fx\t%s\t\n",
			k.name, tFast/float64(*n), tStd/float64(*n), tStd/tFast, approxCol)
	}

	w.Flush()
}

func selectKernels(names []string) ([]kernelEntry, error) {
	if len(names) == 0 {
		return kernels, nil
	}

	var out []kernelEntry
	for _, name := range names {
		name = strings.ToLower(name)
		found := false
		for _, k := range kernels {
			if k.name == name {
				out = append(out, k)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown kernel %q (use -list for available names)", name)
		}
	}
	return out, nil
}

// timeBlock returns the wall time of fn in nanoseconds.
func timeBlock(fn func()) float64 {
	t0 := time.Now()
	fn()
	return float64(time.Since(t0).Nanoseconds())
}

// timeStd times a scalar float64 reference loop over src, writing to dst so
// the work cannot be optimized away.
func timeStd(dst, src []float32, fn func(float64) float64) float64 {
	t0 := time.Now()
	for i := range src {
		dst[i] = float32(fn(float64(src[i])))
	}
	return float64(time.Since(t0).Nanoseconds())
}

func fillRange(rng *rand.Rand, n int, lo, hi float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float32()
	}
	return out
}

func fillPositive(rng *rand.Rand, n int, lo, hi float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		v := lo + (hi-lo)*rng.Float32()
		if v <= 0 {
			v = lo
		}
		out[i] = v
	}
	return out
}

func fillNonzero(rng *rand.Rand, n int, minAbs, maxAbs float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		v := -maxAbs + 2*maxAbs*rng.Float32()
		if v >= 0 && v < minAbs {
			v = minAbs
		}
		if v < 0 && v > -minAbs {
			v = -minAbs
		}
		out[i] = v
	}
	return out
}

func simdFlags(f cpu.Features) string {
	var flags []string
	if f.HasSSE2 {
		flags = append(flags, "SSE2")
	}
	if f.HasAVX {
		flags = append(flags, "AVX")
	}
	if f.HasAVX2 {
		flags = append(flags, "AVX2")
	}
	if f.HasAVX512 {
		flags = append(flags, "AVX-512")
	}
	if f.HasNEON {
		flags = append(flags, "NEON")
	}
	if len(flags) == 0 {
		return "generic"
	}
	return strings.Join(flags, " ")
}
