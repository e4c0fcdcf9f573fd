package fmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/f32bits"
)

// rsqrtMagic is the classical fast-inverse-square-root constant.
const rsqrtMagic = 0x5f3759df

// Rsqrt returns an approximation of 1/sqrt(x) using the bit-level initial
// estimate refined by one Newton-Raphson step. Rsqrt(0) is +Inf, Rsqrt of a
// negative value is NaN and NaN propagates. Relative error stays below
// about 2e-3.
func (e *Engine) Rsqrt(x float32) float32 {
	return rsqrtKernel(x)
}

// Sqrt returns an approximation of the square root of x, derived as
// x·Rsqrt(x). Sqrt(0) is 0, Sqrt of a negative value is NaN and NaN
// propagates.
func (e *Engine) Sqrt(x float32) float32 {
	return sqrtKernel(x)
}

func rsqrtKernel(x float32) float32 {
	if x == 0 {
		return float32(math.Inf(1))
	}
	if x < 0 {
		return float32(math.NaN())
	}

	xhalf := 0.5 * x
	i := f32bits.Bits(x)
	i = rsqrtMagic - (i >> 1)
	y := f32bits.FromBits(i)

	// One Newton-Raphson step: y ← y·(3/2 - x/2·y²).
	y = y * (1.5 - xhalf*y*y)
	return y
}

func sqrtKernel(x float32) float32 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return float32(math.NaN())
	}
	return x * rsqrtKernel(x)
}
