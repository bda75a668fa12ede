package stencil

import archregistry "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"

// CopyFloats copies count floats from src to dst in vector-width chunks
// with a scalar remainder. It panics if count exceeds either slice.
func CopyFloats(dst, src []float32, count int) {
	defaultKernel().CopyFloats(dst, src, count)
}

// Pad returns a new (w+2*pad) x (h+2*pad) image whose border ring of
// thickness pad is zero and whose interior is an exact copy of img.
// pad == 0 yields a plain copy.
func Pad(img Image, pad int) (Image, error) {
	return padWith(defaultKernel().CopyFloats, img, pad)
}

// Unpad copies the pad-inset interior of padded into dst. dst must be
// exactly (padded.Width-2*pad) x (padded.Height-2*pad).
func Unpad(dst, padded Image, pad int) error {
	if pad < 0 {
		return invalidf("negative pad size %d", pad)
	}
	if err := padded.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.Width != padded.Width-2*pad || dst.Height != padded.Height-2*pad {
		return invalidf("unpad destination %dx%d, want %dx%d",
			dst.Width, dst.Height, padded.Width-2*pad, padded.Height-2*pad)
	}

	copyFloats := defaultKernel().CopyFloats
	for y := range dst.Height {
		off := (y+pad)*padded.Width + pad
		copyFloats(dst.Row(y), padded.Data[off:off+dst.Width], dst.Width)
	}

	return nil
}

func padWith(copyFloats archregistry.CopyFn, img Image, pad int) (Image, error) {
	if pad < 0 {
		return Image{}, invalidf("negative pad size %d", pad)
	}
	if err := img.Validate(); err != nil {
		return Image{}, err
	}
	if pad > (MaxElements-img.Width)/2 || pad > (MaxElements-img.Height)/2 {
		return Image{}, ErrTooLarge
	}

	// make zeroes the buffer, which covers the border ring.
	padded, err := NewImage(img.Width+2*pad, img.Height+2*pad)
	if err != nil {
		return Image{}, err
	}

	for y := range img.Height {
		off := (y+pad)*padded.Width + pad
		copyFloats(padded.Data[off:off+img.Width], img.Row(y), img.Width)
	}

	return padded, nil
}
