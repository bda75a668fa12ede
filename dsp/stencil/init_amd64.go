//go:build amd64 && !purego

package stencil

import (
	_ "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/generic"    // register generic backend
)
