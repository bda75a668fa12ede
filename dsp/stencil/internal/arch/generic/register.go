package generic

import (
	"github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"
	"github.com/cwbudde/algo-stencil/internal/cpu"
)

// init registers the pure Go kernels. They are the fallback when no SIMD
// level is available and the only kernels under the purego tag.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		CopyFloats:   CopyFloats,
		CorrelateRow: CorrelateRow,
	})
}
