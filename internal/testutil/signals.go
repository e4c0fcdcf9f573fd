package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Ramp generates length values linearly spaced over [from, to] inclusive.
func Ramp(from, to float32, length int) []float32 {
	out := make([]float32, length)
	if length == 0 {
		return out
	}
	if length == 1 {
		out[0] = from
		return out
	}
	step := (float64(to) - float64(from)) / float64(length-1)
	for i := range out {
		out[i] = float32(float64(from) + step*float64(i))
	}
	return out
}

// LogRamp generates length values logarithmically spaced over [from, to],
// both of which must be positive.
func LogRamp(from, to float32, length int) []float32 {
	out := make([]float32, length)
	if length == 0 {
		return out
	}
	if length == 1 {
		out[0] = from
		return out
	}
	ratio := float64(to) / float64(from)
	for i := range out {
		out[i] = float32(float64(from) * math.Pow(ratio, float64(i)/float64(length-1)))
	}
	return out
}
