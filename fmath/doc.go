// Package fmath provides fast approximations of common single-precision
// math functions: Sin, Cos, Exp, Log, Sqrt, Rsqrt and Rcp, plus block
// variants that map each kernel over a float32 slice.
//
// These approximations trade IEEE-754 accuracy for throughput, making them
// suitable for graphics, simulation and signal-processing pipelines that
// push large float arrays through transcendental functions and do not need
// libm-grade precision. For applications requiring correctly rounded
// results, use the standard library math package instead.
//
// # Accuracy Characteristics
//
// Sin/Cos: 4096-entry lookup table with linear interpolation, absolute error
// below 1e-4 within the primary period. The table index wraps by bitmask
// instead of reducing the argument modulo 2π, so accuracy degrades as |x|
// grows; inputs of large magnitude lose fractional index precision. This is
// a deliberate trade-off, not a defect.
//
// Exp: magic-bias range reduction with a cubic polynomial for 2^f, relative
// error below 1e-3 across the finite range. Inputs above 88 return +Inf,
// inputs below -100 return 0.
//
// Log: bit-level exponent/mantissa split with a 5-term series, absolute
// error below 1e-4 for inputs near 1. The truncated series converges slowly
// as the mantissa approaches 2, where the absolute error reaches about 0.09;
// inputs whose mantissa lies in the lower half of [1, 2) fare much better.
//
// Rsqrt/Sqrt: the classical 0x5f3759df estimate with one Newton-Raphson
// step, relative error below 2e-3.
//
// # Engines
//
// All state lives in an Engine, which owns the sine lookup table and its
// configuration. The package-level functions operate on a shared default
// Engine with default settings. The table is built lazily on first trig use,
// guarded by sync.Once, so concurrent first use is safe; call Init (or
// Engine.Init) to pay the construction cost eagerly.
//
// Once built, the table is never mutated, so all scalar and block kernels
// are safe for unlimited concurrent use.
package fmath
