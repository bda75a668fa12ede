//go:build fastmath

package stencil

import approx "github.com/meko-christian/algo-approx"

// mathExp computes e^x using the fast approximation. Only the Gaussian
// preset uses it, once per kernel construction.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
