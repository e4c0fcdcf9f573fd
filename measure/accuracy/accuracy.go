// Package accuracy quantifies the error of the fast approximation kernels
// against float64 references.
//
// Two views are provided: point-wise error sweeps over an input interval
// (max absolute, max relative and RMS error), and an FFT-based spectral
// view that reports the harmonic distortion a lookup-table sine introduces
// into an otherwise pure tone. The spectral view is the more honest metric
// for audio use, where correlated interpolation error is audible as
// distortion long before the point-wise error matters.
package accuracy

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// SweepResult holds point-wise error statistics of an approximation over an
// input interval.
type SweepResult struct {
	// MaxAbsError is the largest |approx(x) - ref(x)| observed.
	MaxAbsError float64

	// MaxRelError is the largest |approx(x) - ref(x)| / |ref(x)| observed,
	// skipping points where |ref(x)| is below 1e-12.
	MaxRelError float64

	// RMSError is the root-mean-square absolute error over all points.
	RMSError float64

	// WorstInput is the input that produced MaxAbsError.
	WorstInput float32
}

// Sweep evaluates approx against ref at count points linearly spaced over
// [from, to] and returns the error statistics. Points where either function
// is non-finite are skipped.
func Sweep(approx func(float32) float32, ref func(float64) float64, from, to float64, count int) SweepResult {
	return sweep(approx, ref, count, func(i int) float64 {
		return from + (to-from)*float64(i)/float64(count-1)
	})
}

// LogSweep evaluates approx against ref at count points logarithmically
// spaced over [from, to]. Both bounds must be positive.
func LogSweep(approx func(float32) float32, ref func(float64) float64, from, to float64, count int) SweepResult {
	ratio := to / from
	return sweep(approx, ref, count, func(i int) float64 {
		return from * math.Pow(ratio, float64(i)/float64(count-1))
	})
}

func sweep(approx func(float32) float32, ref func(float64) float64, count int, point func(i int) float64) SweepResult {
	var res SweepResult
	if count < 2 {
		return res
	}

	sumSq := 0.0
	n := 0

	for i := 0; i < count; i++ {
		x := point(i)
		want := ref(x)
		got := float64(approx(float32(x)))
		if math.IsNaN(want) || math.IsInf(want, 0) || math.IsNaN(got) || math.IsInf(got, 0) {
			continue
		}

		diff := math.Abs(got - want)
		if diff > res.MaxAbsError {
			res.MaxAbsError = diff
			res.WorstInput = float32(x)
		}
		if scale := math.Abs(want); scale > 1e-12 {
			if rel := diff / scale; rel > res.MaxRelError {
				res.MaxRelError = rel
			}
		}

		sumSq += diff * diff
		n++
	}

	if n > 0 {
		res.RMSError = math.Sqrt(sumSq / float64(n))
	}
	return res
}

// DistortionResult holds the spectral error metrics of a sine approximation.
type DistortionResult struct {
	// FundamentalLevel is the power of the generated tone's fundamental bin.
	FundamentalLevel float64

	// THDN is total harmonic distortion plus noise relative to the
	// fundamental, as an amplitude ratio.
	THDN float64

	// THDNdB is THDN expressed in dB (20·log10).
	THDNdB float64
}

// Distortion synthesizes cycles full periods of a tone across fftSize
// samples using the given sine approximation, transforms it, and reports
// how much energy lands outside the fundamental bin. The tone frequency is
// bin-exact, so a perfect sine would put all energy into one bin and any
// spread is approximation error.
//
// fftSize must be a transform size accepted by the FFT plan and cycles must
// lie in (0, fftSize/2).
func Distortion(sin func(float32) float32, fftSize, cycles int) (DistortionResult, error) {
	if cycles <= 0 || cycles >= fftSize/2 {
		return DistortionResult{}, fmt.Errorf("accuracy: cycles %d out of range for fft size %d", cycles, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return DistortionResult{}, fmt.Errorf("accuracy: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	step := 2 * math.Pi * float64(cycles) / float64(fftSize)
	for i := range in {
		in[i] = complex(float64(sin(float32(step*float64(i)))), 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return DistortionResult{}, fmt.Errorf("accuracy: fft forward: %w", err)
	}

	binCount := fftSize/2 + 1
	fundPower := 0.0
	restPower := 0.0
	for i := 1; i < binCount; i++ {
		p := real(out[i])*real(out[i]) + imag(out[i])*imag(out[i])
		if i == cycles {
			fundPower = p
		} else {
			restPower += p
		}
	}

	res := DistortionResult{FundamentalLevel: fundPower}
	if fundPower > 0 {
		res.THDN = math.Sqrt(restPower / fundPower)
		if res.THDN > 0 {
			res.THDNdB = 20 * math.Log10(res.THDN)
		} else {
			res.THDNdB = math.Inf(-1)
		}
	}
	return res, nil
}
