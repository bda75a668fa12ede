//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"
	"github.com/cwbudde/algo-stencil/internal/cpu"
)

// init registers the SSE2 kernels. SSE2 is the amd64 baseline, so this entry
// is selected whenever AVX2 is unavailable and SIMD is not disabled.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "sse2",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		CopyFloats:   CopyFloats,
		CorrelateRow: CorrelateRow,
	})
}
