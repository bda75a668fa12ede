// Package generic contains the pure Go stencil kernels.
package generic

import "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"

// CopyFloats copies count floats from src to dst in chunks of
// registry.ChunkWidth with a scalar remainder.
func CopyFloats(dst, src []float32, count int) {
	if count > len(dst) || count > len(src) {
		panic("stencil: copy out of range")
	}

	i := 0
	for ; i+registry.ChunkWidth <= count; i += registry.ChunkWidth {
		s := src[i : i+registry.ChunkWidth : i+registry.ChunkWidth]
		d := dst[i : i+registry.ChunkWidth : i+registry.ChunkWidth]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		d[4], d[5], d[6], d[7] = s[4], s[5], s[6], s[7]
	}

	for ; i < count; i++ {
		dst[i] = src[i]
	}
}
