package fmath

// defaultEngine backs the package-level functions: default table size,
// reference table source, sequential block dispatch.
var defaultEngine = New()

// Default returns the Engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Init builds the default Engine's sine lookup table eagerly. It is
// idempotent and safe for concurrent use; trig functions call it implicitly
// on first use.
func Init() {
	defaultEngine.Init()
}

// Sin returns an approximation of sin(x) using the default Engine.
func Sin(x float32) float32 { return defaultEngine.Sin(x) }

// Cos returns an approximation of cos(x) using the default Engine.
func Cos(x float32) float32 { return defaultEngine.Cos(x) }

// Exp returns an approximation of e^x using the default Engine.
func Exp(x float32) float32 { return defaultEngine.Exp(x) }

// Log returns an approximation of ln(x) using the default Engine.
func Log(x float32) float32 { return defaultEngine.Log(x) }

// Sqrt returns an approximation of the square root of x using the default
// Engine.
func Sqrt(x float32) float32 { return defaultEngine.Sqrt(x) }

// Rsqrt returns an approximation of 1/sqrt(x) using the default Engine.
func Rsqrt(x float32) float32 { return defaultEngine.Rsqrt(x) }

// Rcp returns the reciprocal of x using the default Engine.
func Rcp(x float32) float32 { return defaultEngine.Rcp(x) }

// SinBlock applies Sin element-wise using the default Engine.
func SinBlock(dst, src []float32) { defaultEngine.SinBlock(dst, src) }

// CosBlock applies Cos element-wise using the default Engine.
func CosBlock(dst, src []float32) { defaultEngine.CosBlock(dst, src) }

// ExpBlock applies Exp element-wise using the default Engine.
func ExpBlock(dst, src []float32) { defaultEngine.ExpBlock(dst, src) }

// LogBlock applies Log element-wise using the default Engine.
func LogBlock(dst, src []float32) { defaultEngine.LogBlock(dst, src) }

// SqrtBlock applies Sqrt element-wise using the default Engine.
func SqrtBlock(dst, src []float32) { defaultEngine.SqrtBlock(dst, src) }

// RsqrtBlock applies Rsqrt element-wise using the default Engine.
func RsqrtBlock(dst, src []float32) { defaultEngine.RsqrtBlock(dst, src) }

// RcpBlock applies Rcp element-wise using the default Engine.
func RcpBlock(dst, src []float32) { defaultEngine.RcpBlock(dst, src) }
