package reference

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT computes the same zero-boundary cross-correlation as Naive in the
// frequency domain, in float64. The input is zero-extended to power-of-two
// sizes of at least width+2 by height+2 so the circular result has no
// wrap-around inside the output window.
func FFT(in []float32, width, height int, k *[9]float32) ([]float64, error) {
	if width == 0 || height == 0 {
		return nil, nil
	}
	if len(in) != width*height {
		return nil, fmt.Errorf("reference: input length %d, want %d", len(in), width*height)
	}

	nx := nextPowerOf2(width + 2)
	ny := nextPowerOf2(height + 2)

	planX, err := algofft.NewPlan64(nx)
	if err != nil {
		return nil, fmt.Errorf("reference: failed to create FFT plan: %w", err)
	}

	planY, err := algofft.NewPlan64(ny)
	if err != nil {
		return nil, fmt.Errorf("reference: failed to create FFT plan: %w", err)
	}

	img := make([]complex128, nx*ny)
	for y := range height {
		for x := range width {
			img[y*nx+x] = complex(float64(in[y*width+x]), 0)
		}
	}

	// Tap (i, j) reads in[x+j-1, y+i-1]; as a circular convolution kernel it
	// sits at (-(j-1), -(i-1)) modulo the transform size.
	ker := make([]complex128, nx*ny)
	for i := range 3 {
		for j := range 3 {
			kx := (nx - (j - 1)) % nx
			ky := (ny - (i - 1)) % ny
			ker[ky*nx+kx] = complex(float64(k[i*3+j]), 0)
		}
	}

	if err := transform2D(planX, planY, img, nx, ny, false); err != nil {
		return nil, err
	}
	if err := transform2D(planX, planY, ker, nx, ny, false); err != nil {
		return nil, err
	}

	for i := range img {
		img[i] *= ker[i]
	}

	if err := transform2D(planX, planY, img, nx, ny, true); err != nil {
		return nil, err
	}

	out := make([]float64, width*height)
	for y := range height {
		for x := range width {
			out[y*width+x] = real(img[y*nx+x])
		}
	}

	return out, nil
}

// transform2D runs row transforms then column transforms in place.
func transform2D(planX, planY *algofft.Plan[complex128], data []complex128, nx, ny int, inverse bool) error {
	rowOut := make([]complex128, nx)
	for y := range ny {
		row := data[y*nx : (y+1)*nx]
		if err := run(planX, rowOut, row, inverse); err != nil {
			return err
		}
		copy(row, rowOut)
	}

	colIn := make([]complex128, ny)
	colOut := make([]complex128, ny)
	for x := range nx {
		for y := range ny {
			colIn[y] = data[y*nx+x]
		}
		if err := run(planY, colOut, colIn, inverse); err != nil {
			return err
		}
		for y := range ny {
			data[y*nx+x] = colOut[y]
		}
	}

	return nil
}

func run(plan *algofft.Plan[complex128], dst, src []complex128, inverse bool) error {
	if inverse {
		if err := plan.Inverse(dst, src); err != nil {
			return fmt.Errorf("reference: inverse FFT failed: %w", err)
		}
		return nil
	}

	if err := plan.Forward(dst, src); err != nil {
		return fmt.Errorf("reference: forward FFT failed: %w", err)
	}

	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
