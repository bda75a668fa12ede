package stencil

import (
	"golang.org/x/sync/errgroup"

	archregistry "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"
)

// padSize is (3-1)/2 for the fixed 3x3 kernel.
const padSize = 1

// Convolve applies k to the width x height image in and writes the result
// to out. Both buffers hold width*height floats and must not overlap. The
// kernel is applied un-flipped (cross-correlation) over a zero border.
// Empty images are a no-op.
func Convolve(in, out []float32, width, height int, k Kernel) error {
	src, err := ImageFrom(width, height, in)
	if err != nil {
		return err
	}

	dst, err := ImageFrom(width, height, out)
	if err != nil {
		return err
	}

	return ConvolveImage(dst, src, k)
}

// ConvolveImage applies k to src and writes the result to dst.
func ConvolveImage(dst, src Image, k Kernel, opts ...Option) error {
	c, err := NewCorrelator(k, opts...)
	if err != nil {
		return err
	}

	return c.Process(dst, src)
}

// Correlator applies one kernel to any number of images. It holds no
// per-image state: every Process call allocates its own padded scratch
// buffer and drops it before returning, so a Correlator is safe for
// concurrent use.
type Correlator struct {
	taps    archregistry.Taps
	entry   *archregistry.OpEntry
	workers int
}

// NewCorrelator returns a Correlator for k.
func NewCorrelator(k Kernel, opts ...Option) (*Correlator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	entry := defaultKernel()
	if cfg.impl != "" {
		var err error
		if entry, err = namedKernel(cfg.impl); err != nil {
			return nil, err
		}
	}

	return &Correlator{
		taps:    archregistry.Taps(k),
		entry:   entry,
		workers: cfg.workers,
	}, nil
}

// Kernel returns the kernel the Correlator applies.
func (c *Correlator) Kernel() Kernel { return Kernel(c.taps) }

// Implementation returns the name of the kernel implementation in use.
func (c *Correlator) Implementation() string { return c.entry.Name }

// Process writes the stencil of src into dst. dst must have the same
// dimensions as src and must not share memory with it. Every element of
// dst is assigned exactly once; its previous contents are never read.
func (c *Correlator) Process(dst, src Image) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return invalidf("output %dx%d, input %dx%d", dst.Width, dst.Height, src.Width, src.Height)
	}
	if overlaps(dst.Data, src.Data) {
		return ErrAliasedBuffers
	}
	if src.Width == 0 || src.Height == 0 {
		return nil
	}

	padded, err := padWith(c.entry.CopyFloats, src, padSize)
	if err != nil {
		return err
	}

	workers := min(c.workers, src.Height)
	if workers <= 1 {
		c.correlateRows(dst, padded, 0, src.Height)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)

	band := (src.Height + workers - 1) / workers
	for y0 := 0; y0 < src.Height; y0 += band {
		y1 := min(y0+band, src.Height)
		g.Go(func() error {
			c.correlateRows(dst, padded, y0, y1)
			return nil
		})
	}

	return g.Wait()
}

// correlateRows fills output rows [y0, y1). Output row y reads padded rows
// y, y+1 and y+2.
func (c *Correlator) correlateRows(dst, padded Image, y0, y1 int) {
	width := dst.Width
	n := width &^ (archregistry.ChunkWidth - 1)

	for y := y0; y < y1; y++ {
		r0 := padded.Row(y)
		r1 := padded.Row(y + 1)
		r2 := padded.Row(y + 2)
		out := dst.Row(y)

		if n > 0 {
			c.entry.CorrelateRow(out, r0, r1, r2, &c.taps, n)
		}

		correlateTail(out, r0, r1, r2, &c.taps, n, width)
	}
}

// correlateTail computes columns [from, to) with the same operation order
// as the vector kernels, so both paths agree bit for bit.
func correlateTail(out, r0, r1, r2 []float32, taps *archregistry.Taps, from, to int) {
	for x := from; x < to; x++ {
		var acc float32
		acc += float32(taps[0] * r0[x])
		acc += float32(taps[1] * r0[x+1])
		acc += float32(taps[2] * r0[x+2])
		acc += float32(taps[3] * r1[x])
		acc += float32(taps[4] * r1[x+1])
		acc += float32(taps[5] * r1[x+2])
		acc += float32(taps[6] * r2[x])
		acc += float32(taps[7] * r2[x+1])
		acc += float32(taps[8] * r2[x+2])
		out[x] = acc
	}
}
