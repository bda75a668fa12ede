// Package stencil provides a 3x3 zero-padded stencil over float32 images,
// tuned for throughput with SIMD kernels, register blocking and loop
// unrolling.
//
// The operation is named convolution but computes cross-correlation: the
// kernel is applied as given, without flipping. For every output pixel
//
//	out[x,y] = sum over i,j in 0..2 of k[i,j] * padded[x+j, y+i]
//
// where padded is the input surrounded by a one-pixel ring of zeros. Use
// [Kernel.Flip] to obtain textbook convolution.
//
// # Usage
//
// One-shot on raw buffers:
//
//	err := stencil.Convolve(in, out, width, height, stencil.BoxBlur())
//
// Reusable engine with options:
//
//	c, err := stencil.NewCorrelator(stencil.SobelX(), stencil.WithWorkers(4))
//	err = c.Process(dst, src)
//
// Padding helpers used by the engine are exported for callers that need them:
//
//	padded, err := stencil.Pad(img, 2)
//	err = stencil.Unpad(img, padded, 2)
//
// # Kernels
//
// The inner loop processes chunks of eight output columns. For each of the
// three kernel rows, the matching padded row is loaded at column offsets 0,
// 1 and 2 and multiplied by the broadcast taps, so every padded row is read
// once per kernel row and reused across its three taps. Columns that do not
// fill a chunk are finished by a scalar loop.
//
// Implementations are selected at runtime from the detected CPU features:
//
//   - avx2: one 8-lane YMM accumulator per chunk (amd64)
//   - sse2: two 4-lane XMM accumulators per chunk (amd64 baseline)
//   - generic: unrolled pure Go (all platforms, and under the purego tag)
//
// Set ALGO_STENCIL_NO_SIMD=1 to force the generic kernel.
//
// # Reproducibility
//
// Every path sums in the same order: accumulator starts at zero, kernel row
// 0, 1, 2, taps left to right, each product rounded to float32 before the
// add. The vector kernels, the scalar tail and the generic kernel therefore
// produce bit-identical results, and [WithWorkers] does not change output.
package stencil
