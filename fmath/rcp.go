package fmath

import "math"

// Rcp returns the reciprocal 1/x. Rcp(±0) is ±Inf, matching the sign of the
// zero. The current implementation uses hardware division; the entry point
// exists so a Newton-Raphson-refined reciprocal estimate can be slotted in
// without changing callers.
func (e *Engine) Rcp(x float32) float32 {
	return rcpKernel(x)
}

func rcpKernel(x float32) float32 {
	if x == 0 {
		return float32(math.Copysign(math.Inf(1), float64(x)))
	}
	return 1 / x
}
