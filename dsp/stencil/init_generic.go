//go:build !amd64 || purego

package stencil

import (
	_ "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/generic" // register generic backend
)
