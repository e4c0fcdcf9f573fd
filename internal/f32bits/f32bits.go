// Package f32bits provides bit-level access to the IEEE-754 single-precision
// format for the approximation kernels.
//
// Every kernel that manipulates exponent or mantissa fields goes through this
// package so the whole library shares a single, well-defined reinterpretation
// mechanism (math.Float32bits / math.Float32frombits, which are guaranteed
// aliasing-safe in Go).
package f32bits

import "math"

// IEEE-754 single-precision field layout.
const (
	MantissaBits = 23         // width of the mantissa field
	ExponentBias = 127        // bias applied to the exponent field
	ExponentMask = 0xff       // exponent field mask (after shifting)
	MantissaMask = 0x7fffff   // mantissa field mask
	OneBits      = 0x3f800000 // bit pattern of 1.0 (exponent field = bias, mantissa = 0)
)

// Bits returns the raw bit pattern of x.
func Bits(x float32) uint32 {
	return math.Float32bits(x)
}

// FromBits returns the float32 with the raw bit pattern u.
func FromBits(u uint32) float32 {
	return math.Float32frombits(u)
}

// Exponent returns the unbiased exponent field of x.
// For normalized x this is floor(log2(|x|)); denormals and zero report -127.
func Exponent(x float32) int {
	return int((math.Float32bits(x)>>MantissaBits)&ExponentMask) - ExponentBias
}

// Mantissa returns x with its exponent field forced to the bias pattern,
// keeping the original mantissa bits. For normalized x the result lies in
// [1, 2).
func Mantissa(x float32) float32 {
	u := math.Float32bits(x)&MantissaMask | OneBits
	return math.Float32frombits(u)
}

// Pow2 returns 2^n. For n in the normalized exponent range [-126, 127] the
// value is synthesized directly in the exponent field; outside that range it
// falls back to a generic scale-by-power-of-two, which covers the denormal
// and overflow cases.
func Pow2(n int) float32 {
	if n >= -126 && n <= 127 {
		return math.Float32frombits(uint32(n+ExponentBias) << MantissaBits)
	}
	return float32(math.Ldexp(1, n))
}
