package fmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/f32bits"
)

const (
	// expOverflow and expUnderflow clamp the input before the reconstruction
	// step could produce garbage: e^88 is near the float32 maximum and
	// e^-100 is far below the smallest denormal.
	expOverflow  = 88.0
	expUnderflow = -100.0

	// expMagicBias is 1.5·2^23. Adding it forces rounding of the integer
	// part through the float32 mantissa, valid for |r| < 2^22.
	expMagicBias = 12582912.0

	// Cubic coefficients for 2^f on [-0.5, 0.5] (ln2 power series):
	// 2^f ≈ 1 + f·(ln2 + f·(c2 + f·c3)). Max relative error ≈ 8e-4 at the
	// interval ends.
	expC1 = 0.693147182
	expC2 = 0.240226507
	expC3 = 0.05550410866
)

// Exp returns an approximation of e^x. Inputs above 88 return +Inf and
// inputs below -100 return 0; NaN propagates.
func (e *Engine) Exp(x float32) float32 {
	return expKernel(x)
}

func expKernel(x float32) float32 {
	if x > expOverflow {
		return float32(math.Inf(1))
	}
	if x < expUnderflow {
		return 0
	}

	// r = x·log2(e) = n + f with n integer, f in [-0.5, 0.5].
	r := x * float32(invLn2)
	rb := r + expMagicBias
	n := int(rb) - 12582912
	f := r - float32(n)

	p := expC3*f + expC2
	p = p*f + expC1
	p = p*f + 1

	return f32bits.Pow2(n) * p
}
