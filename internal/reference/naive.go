// Package reference holds slow, independent implementations of the 3x3
// stencil used to check the optimized engine.
package reference

// Naive computes the zero-boundary 3x3 cross-correlation of in with a
// bounds-checked triple loop and no padded copy. It sums in the canonical
// order (kernel row 0..2, tap 0..2, products rounded to float32), so its
// output is bit-identical to the engine's.
func Naive(in []float32, width, height int, k *[9]float32) []float32 {
	out := make([]float32, width*height)

	for y := range height {
		for x := range width {
			var acc float32
			for i := range 3 {
				for j := range 3 {
					acc += float32(k[i*3+j] * at(in, width, height, x+j-1, y+i-1))
				}
			}
			out[y*width+x] = acc
		}
	}

	return out
}

// NaiveConvolve computes textbook convolution: the kernel is flipped in
// both axes before it is applied.
func NaiveConvolve(in []float32, width, height int, k *[9]float32) []float32 {
	var flipped [9]float32
	for i := range k {
		flipped[8-i] = k[i]
	}

	return Naive(in, width, height, &flipped)
}

func at(in []float32, width, height, x, y int) float32 {
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0
	}

	return in[y*width+x]
}
