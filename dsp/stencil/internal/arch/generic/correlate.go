package generic

import "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"

// CorrelateRow is the register-blocked Go kernel: the nine taps live in
// locals for the whole row and each padded row is read through one
// reslice per chunk, at offsets 0, 1 and 2.
func CorrelateRow(dst, r0, r1, r2 []float32, taps *registry.Taps, n int) {
	if n%registry.ChunkWidth != 0 {
		panic("stencil: row length not a multiple of the chunk width")
	}
	if n > len(dst) || n+2 > len(r0) || n+2 > len(r1) || n+2 > len(r2) {
		panic("stencil: row out of range")
	}

	k00, k01, k02 := taps[0], taps[1], taps[2]
	k10, k11, k12 := taps[3], taps[4], taps[5]
	k20, k21, k22 := taps[6], taps[7], taps[8]

	const span = registry.ChunkWidth + 2

	for x := 0; x < n; x += registry.ChunkWidth {
		a := r0[x : x+span : x+span]
		b := r1[x : x+span : x+span]
		c := r2[x : x+span : x+span]
		d := dst[x : x+registry.ChunkWidth : x+registry.ChunkWidth]

		for l := range registry.ChunkWidth {
			// float32(...) keeps every product rounded; no FMA contraction.
			var acc float32
			acc += float32(k00 * a[l])
			acc += float32(k01 * a[l+1])
			acc += float32(k02 * a[l+2])
			acc += float32(k10 * b[l])
			acc += float32(k11 * b[l+1])
			acc += float32(k12 * b[l+2])
			acc += float32(k20 * c[l])
			acc += float32(k21 * c[l+1])
			acc += float32(k22 * c[l+2])
			d[l] = acc
		}
	}
}
