package testutil

import "math/rand"

// DeterministicImage returns width*height values uniform in
// [-amplitude, amplitude) from a fixed seed.
func DeterministicImage(seed int64, amplitude float32, width, height int) []float32 {
	out := make([]float32, width*height)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns width*height values 1, 2, 3, ... in row-major order.
func Ramp(width, height int) []float32 {
	out := make([]float32, width*height)
	for i := range out {
		out[i] = float32(i + 1)
	}
	return out
}

// Filled returns width*height copies of v.
func Filled(v float32, width, height int) []float32 {
	out := make([]float32, width*height)
	for i := range out {
		out[i] = v
	}
	return out
}

// Poisoned returns a buffer filled with NaN, for checking that a routine
// overwrites every element without reading it.
func Poisoned(width, height int) []float32 {
	nan := float32(0)
	nan /= nan
	return Filled(nan, width, height)
}
