// Package diag prints stencil images as text and compares engine output
// against reference results.
package diag

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stencil/dsp/stencil"
)

// ErrRoundTrip is returned by SmokeTest when unpadding does not restore the
// original data.
var ErrRoundTrip = errors.New("diag: pad/unpad round trip mismatch")

// Fprint writes img as text, one line per row, each value formatted with
// %f and followed by ", ".
func Fprint(w io.Writer, img stencil.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for y := range img.Height {
		for _, v := range img.Row(y) {
			fmt.Fprintf(bw, "%f, ", v)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// SmokeTest pads the fixed 3x3 image 1..9 by pad, prints the original,
// padded and unpadded arrays to w, and checks that the round trip restores
// the original exactly.
func SmokeTest(w io.Writer, pad int) error {
	orig, err := stencil.ImageFrom(3, 3, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Original data")
	if err := Fprint(w, orig); err != nil {
		return err
	}

	padded, err := stencil.Pad(orig, pad)
	if err != nil {
		return fmt.Errorf("diag: pad: %w", err)
	}

	fmt.Fprintf(w, "Padded with %d 0s on each side\n", pad)
	if err := Fprint(w, padded); err != nil {
		return err
	}

	out, err := stencil.NewImage(3, 3)
	if err != nil {
		return err
	}
	if err := stencil.Unpad(out, padded, pad); err != nil {
		return fmt.Errorf("diag: unpad: %w", err)
	}

	fmt.Fprintln(w, "Padding removed!")
	if err := Fprint(w, out); err != nil {
		return err
	}

	for i := range orig.Data {
		if out.Data[i] != orig.Data[i] {
			return fmt.Errorf("%w: index %d: got %v, want %v", ErrRoundTrip, i, out.Data[i], orig.Data[i])
		}
	}

	return nil
}

// MaxAbsDiff returns the largest absolute element difference between a and
// b, computed in float64.
func MaxAbsDiff(a, b stencil.Image) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", stencil.ErrInvalidArgument, a.Width, a.Height, b.Width, b.Height)
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	return maxAbsDiff64(widen(a.Data), widen(b.Data)), nil
}

// MaxAbsDiff64 is MaxAbsDiff against a float64 reference such as the FFT
// engine's output.
func MaxAbsDiff64(a stencil.Image, ref []float64) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if len(ref) != len(a.Data) {
		return 0, fmt.Errorf("%w: reference length %d, want %d", stencil.ErrInvalidArgument, len(ref), len(a.Data))
	}

	return maxAbsDiff64(widen(a.Data), ref), nil
}

func maxAbsDiff64(a, b []float64) float64 {
	diff := make([]float64, len(a))
	vecmath.ScaleBlock(diff, b, -1)
	vecmath.AddBlockInPlace(diff, a)

	maxDiff := 0.0
	for _, d := range diff {
		if d != d {
			return math.NaN()
		}
		maxDiff = max(maxDiff, math.Abs(d))
	}

	return maxDiff
}

// Summary describes the value range of an image.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
	RMS  float64
}

// Summarize returns the min, max, mean and RMS of img. An empty image
// yields a zero Summary.
func Summarize(img stencil.Image) Summary {
	if len(img.Data) == 0 {
		return Summary{}
	}

	x := widen(img.Data)

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	sum, energy := 0.0, 0.0
	for i, v := range x {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += v
		energy += sq[i]
	}

	n := float64(len(x))
	s.Mean = sum / n
	s.RMS = math.Sqrt(energy / n)

	return s
}

func widen(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}

	return out
}
