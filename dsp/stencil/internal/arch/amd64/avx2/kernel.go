//go:build amd64 && !purego

// Package avx2 contains 256-bit AVX2 stencil kernels for amd64.
package avx2

import "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"

// CopyFloats copies count floats, eight per YMM load/store, and finishes
// the remainder in Go.
func CopyFloats(dst, src []float32, count int) {
	if count > len(dst) || count > len(src) {
		panic("stencil: copy out of range")
	}

	n := count &^ (registry.ChunkWidth - 1)
	if n > 0 {
		copyFloatsAVX2(dst, src, n)
	}

	for i := n; i < count; i++ {
		dst[i] = src[i]
	}
}

// CorrelateRow computes n outputs of one row. Multiply and add stay
// separate instructions (no VFMADD) so results match the scalar path bit
// for bit.
func CorrelateRow(dst, r0, r1, r2 []float32, taps *registry.Taps, n int) {
	if n%registry.ChunkWidth != 0 {
		panic("stencil: row length not a multiple of the chunk width")
	}
	if n > len(dst) || n+2 > len(r0) || n+2 > len(r1) || n+2 > len(r2) {
		panic("stencil: row out of range")
	}
	if n == 0 {
		return
	}

	correlateRowAVX2(dst, r0, r1, r2, taps, n)
}

// Assembly function declarations (implemented in kernel_amd64.s)

//go:noescape
func copyFloatsAVX2(dst, src []float32, n int)

//go:noescape
func correlateRowAVX2(dst, r0, r1, r2 []float32, taps *[9]float32, n int)
