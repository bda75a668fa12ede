package stencil

import "fmt"

// Kernel is a row-major 3x3 stencil. It is applied without flipping.
type Kernel [9]float32

// KernelFrom copies a 9-element row-major slice into a Kernel.
func KernelFrom(taps []float32) (Kernel, error) {
	var k Kernel
	if len(taps) != len(k) {
		return k, invalidf("kernel must have 9 taps, got %d", len(taps))
	}

	copy(k[:], taps)

	return k, nil
}

// At returns the tap in kernel row i, column j.
func (k Kernel) At(i, j int) float32 { return k[i*3+j] }

// Row returns the three taps of kernel row i.
func (k Kernel) Row(i int) [3]float32 { return [3]float32{k[i*3], k[i*3+1], k[i*3+2]} }

// Flip rotates the kernel by 180 degrees. Correlating with k.Flip() is
// textbook convolution with k.
func (k Kernel) Flip() Kernel {
	var f Kernel
	for i := range k {
		f[len(k)-1-i] = k[i]
	}

	return f
}

// Add returns the element-wise sum of k and o.
func (k Kernel) Add(o Kernel) Kernel {
	var s Kernel
	for i := range k {
		s[i] = k[i] + o[i]
	}

	return s
}

// Sum returns the sum of all taps.
func (k Kernel) Sum() float32 {
	var s float32
	for _, v := range k {
		s += v
	}

	return s
}

// String formats the kernel as three bracketed rows.
func (k Kernel) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]", k[0], k[1], k[2], k[3], k[4], k[5], k[6], k[7], k[8])
}

// Identity returns the kernel with a single 1 at the center tap.
func Identity() Kernel { return Kernel{4: 1} }

// Box returns the all-ones kernel (3x3 neighborhood sum).
func Box() Kernel { return Kernel{1, 1, 1, 1, 1, 1, 1, 1, 1} }

// BoxBlur returns the normalized 3x3 mean filter.
func BoxBlur() Kernel {
	const w = float32(1) / 9
	return Kernel{w, w, w, w, w, w, w, w, w}
}

// SobelX returns the horizontal-gradient Sobel kernel.
func SobelX() Kernel { return Kernel{-1, 0, 1, -2, 0, 2, -1, 0, 1} }

// SobelY returns the vertical-gradient Sobel kernel.
func SobelY() Kernel { return Kernel{-1, -2, -1, 0, 0, 0, 1, 2, 1} }

// Laplacian returns the 4-neighbor Laplacian.
func Laplacian() Kernel { return Kernel{0, 1, 0, 1, -4, 1, 0, 1, 0} }

// Sharpen returns identity plus a negative 4-neighbor Laplacian.
func Sharpen() Kernel { return Kernel{0, -1, 0, -1, 5, -1, 0, -1, 0} }

// Gaussian returns a normalized 3x3 Gaussian for the given sigma.
func Gaussian(sigma float64) (Kernel, error) {
	if !(sigma > 0) {
		return Kernel{}, invalidf("gaussian sigma must be > 0: %g", sigma)
	}

	var w [9]float64
	sum := 0.0
	for i := range 3 {
		for j := range 3 {
			di, dj := float64(i-1), float64(j-1)
			v := mathExp(-(di*di + dj*dj) / (2 * sigma * sigma))
			w[i*3+j] = v
			sum += v
		}
	}

	var k Kernel
	for i, v := range w {
		k[i] = float32(v / sum)
	}

	return k, nil
}

// Preset returns a named kernel. Gaussian presets use sigma 1.
func Preset(name string) (Kernel, error) {
	switch name {
	case "identity":
		return Identity(), nil
	case "box":
		return Box(), nil
	case "blur":
		return BoxBlur(), nil
	case "sobel-x":
		return SobelX(), nil
	case "sobel-y":
		return SobelY(), nil
	case "laplacian":
		return Laplacian(), nil
	case "sharpen":
		return Sharpen(), nil
	case "gaussian":
		return Gaussian(1)
	default:
		return Kernel{}, invalidf("unknown kernel preset %q", name)
	}
}

// PresetNames lists the names accepted by Preset.
func PresetNames() []string {
	return []string{"identity", "box", "blur", "sobel-x", "sobel-y", "laplacian", "sharpen", "gaussian"}
}
