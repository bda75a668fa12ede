//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"
	"github.com/cwbudde/algo-stencil/internal/cpu"
)

// init registers the AVX2 kernels. One YMM register covers a whole chunk,
// halving the load and arithmetic instruction count of the SSE2 path.
//
// Priority: 20
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		CopyFloats:   CopyFloats,
		CorrelateRow: CorrelateRow,
	})
}
