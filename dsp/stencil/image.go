package stencil

import "unsafe"

// MaxElements bounds the number of floats in any image the package
// allocates, padded scratch buffers included.
const MaxElements = 1<<31 - 1

// Image is a row-major float32 buffer without row padding.
// len(Data) must equal Width*Height.
type Image struct {
	Width  int
	Height int
	Data   []float32
}

// NewImage allocates a zeroed width x height image.
func NewImage(width, height int) (Image, error) {
	if err := checkDims(width, height); err != nil {
		return Image{}, err
	}

	return Image{Width: width, Height: height, Data: make([]float32, width*height)}, nil
}

// ImageFrom wraps data without copying.
func ImageFrom(width, height int, data []float32) (Image, error) {
	img := Image{Width: width, Height: height, Data: data}
	if err := img.Validate(); err != nil {
		return Image{}, err
	}

	return img, nil
}

// Validate reports whether the dimensions and the buffer length agree.
func (img Image) Validate() error {
	if err := checkDims(img.Width, img.Height); err != nil {
		return err
	}
	if len(img.Data) != img.Width*img.Height {
		return invalidf("data length %d, want %dx%d=%d", len(img.Data), img.Width, img.Height, img.Width*img.Height)
	}

	return nil
}

// Len returns Width*Height.
func (img Image) Len() int { return img.Width * img.Height }

// Row returns row y as a slice into Data.
func (img Image) Row(y int) []float32 {
	off := y * img.Width
	return img.Data[off : off+img.Width : off+img.Width]
}

// At returns the value at column x, row y.
func (img Image) At(x, y int) float32 { return img.Data[y*img.Width+x] }

// Set stores v at column x, row y.
func (img Image) Set(x, y int, v float32) { img.Data[y*img.Width+x] = v }

func checkDims(width, height int) error {
	if width < 0 || height < 0 {
		return invalidf("negative dimensions %dx%d", width, height)
	}
	if width > 0 && height > MaxElements/width {
		return ErrTooLarge
	}

	return nil
}

// overlaps reports whether a and b share any element of memory.
func overlaps(a, b []float32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	const size = unsafe.Sizeof(float32(0))

	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size

	return aStart < bEnd && bStart < aEnd
}
