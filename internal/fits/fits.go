// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fits wraps float32 arrays as FITS primary HDUs and reads them back.
package fits

import (
	"errors"
	"fmt"
	"io"

	"github.com/astrogo/fitsio"

	"github.com/pdiddy/npy2fits/internal/ndarray"
)

// BitpixFloat32 is the BITPIX value of IEEE single precision image data.
const BitpixFloat32 = -32

// ErrNotImage is returned when the primary HDU holds no image.
var ErrNotImage = errors.New("primary HDU is not an image")

// Image is a primary HDU payload ready to be written.
type Image struct {
	// Axes are the FITS axis lengths, NAXIS1 first. NAXIS1 varies fastest,
	// so Axes is the NumPy shape reversed.
	Axes  []int
	Data  []float32
	Cards []fitsio.Card
}

// NewPrimary wraps data of the given NumPy (C order) shape as a primary
// image. No header cards beyond the mandatory ones are added. A
// zero-dimensional shape becomes a single-element one-dimensional image.
func NewPrimary(shape []int, data []float32) (*Image, error) {
	if n := ndarray.Elements(shape); n != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ndarray.ErrShapeMismatch, len(data), shape)
	}
	if len(data) == 0 {
		return nil, ndarray.ErrEmptyArray
	}
	axes := make([]int, len(shape))
	for i, d := range shape {
		axes[len(shape)-1-i] = d
	}
	if len(axes) == 0 {
		axes = []int{1}
	}
	return &Image{Axes: axes, Data: data}, nil
}

// Shape returns the NumPy shape of the image (Axes reversed).
func (img *Image) Shape() []int {
	shape := make([]int, len(img.Axes))
	for i, d := range img.Axes {
		shape[len(img.Axes)-1-i] = d
	}
	return shape
}

// AddRange appends DATAMIN and DATAMAX cards holding the finite value
// range of the payload. It does nothing when no value is finite.
func (img *Image) AddRange() {
	lo, hi, ok := ndarray.Range(img.Data)
	if !ok {
		return
	}
	img.Cards = append(img.Cards,
		fitsio.Card{Name: "DATAMIN", Value: lo, Comment: "minimum data value"},
		fitsio.Card{Name: "DATAMAX", Value: hi, Comment: "maximum data value"},
	)
}

// Write encodes img as the primary HDU of a single-HDU FITS stream.
func Write(w io.Writer, img *Image) error {
	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("creating FITS stream: %w", err)
	}

	hdu := fitsio.NewImage(BitpixFloat32, img.Axes)
	defer hdu.Close()

	if len(img.Cards) > 0 {
		if err := hdu.Header().Append(img.Cards...); err != nil {
			return fmt.Errorf("appending header cards: %w", err)
		}
	}
	if err := hdu.Write(img.Data); err != nil {
		return fmt.Errorf("encoding %d float32 values: %w", len(img.Data), err)
	}
	if err := f.Write(hdu); err != nil {
		return fmt.Errorf("writing primary HDU: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("finishing FITS stream: %w", err)
	}
	return nil
}
