package fmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/f32bits"
)

// Log returns an approximation of the natural logarithm of x.
// Log(0) is -Inf and Log of a negative value is NaN. A NaN input is not
// detected by the domain checks (NaN comparisons are false) and falls
// through to the bit decomposition, which produces a meaningless finite
// value; callers needing NaN detection must check beforehand.
func (e *Engine) Log(x float32) float32 {
	return logKernel(x)
}

func logKernel(x float32) float32 {
	if x == 0 {
		return float32(math.Inf(-1))
	}
	if x < 0 {
		return float32(math.NaN())
	}

	// x = m·2^e with m in [1, 2); log(x) = e·ln2 + log(m).
	exp := f32bits.Exponent(x)
	m := f32bits.Mantissa(x)

	// log(1+z) ≈ z - z²/2 + z³/3 - z⁴/4 + z⁵/5 for z = m-1 in [0, 1).
	z := m - 1
	z2 := z * z
	z3 := z2 * z
	z4 := z3 * z
	z5 := z4 * z
	log1pz := z - 0.5*z2 + z3*(1.0/3.0) - 0.25*z4 + 0.2*z5

	return float32(exp)*float32(ln2) + log1pz
}
