//go:build amd64 && !purego

// Package sse2 contains 128-bit SSE2 stencil kernels for amd64.
package sse2

import "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"

// CopyFloats copies count floats, eight per iteration through two XMM
// registers, and finishes the remainder in Go.
func CopyFloats(dst, src []float32, count int) {
	if count > len(dst) || count > len(src) {
		panic("stencil: copy out of range")
	}

	n := count &^ (registry.ChunkWidth - 1)
	if n > 0 {
		copyFloatsSSE2(dst, src, n)
	}

	for i := n; i < count; i++ {
		dst[i] = src[i]
	}
}

// CorrelateRow computes n outputs of one row with two 4-lane accumulators
// per chunk. The taps are broadcast once into X4-X12 and each padded row
// is read with unaligned loads at column offsets 0, 1 and 2.
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

	correlateRowSSE2(dst, r0, r1, r2, taps, n)
}

// Assembly function declarations (implemented in kernel_amd64.s)

//go:noescape
func copyFloatsSSE2(dst, src []float32, n int)

//go:noescape
func correlateRowSSE2(dst, r0, r1, r2 []float32, taps *[9]float32, n int)
