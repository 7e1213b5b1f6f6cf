// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package npy loads NumPy .npy array files into ndarray values.
package npy

import (
	"fmt"
	"io"

	"github.com/sbinet/npyio"

	"github.com/pdiddy/npy2fits/internal/ndarray"
	"github.com/pdiddy/npy2fits/internal/stream"
)

// Load reads the array stored at path. Paths ending in .gz or .zst are
// decompressed first. Fortran-ordered arrays are returned in C order.
func Load(path string) (*ndarray.Array, error) {
	rc, err := stream.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening array %s: %w", path, err)
	}
	defer rc.Close()

	a, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("loading array %s: %w", path, err)
	}
	return a, nil
}

// Decode reads one .npy stream from r.
func Decode(r io.Reader) (*ndarray.Array, error) {
	rd, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading npy header: %w", err)
	}
	descr := rd.Header.Descr

	dt, err := ndarray.ParseDType(descr.Type)
	if err != nil {
		return nil, err
	}
	if !dt.Supported() {
		return nil, fmt.Errorf("%w: %s (%s)", ndarray.ErrUnsupportedDType, dt.Name(), descr.Type)
	}

	n := ndarray.Elements(descr.Shape)
	data, err := readData(rd, dt, n)
	if err != nil {
		return nil, fmt.Errorf("reading %d %s values: %w", n, dt.Name(), err)
	}

	a, err := ndarray.New(descr.Shape, dt, data)
	if err != nil {
		return nil, err
	}
	if descr.Fortran {
		a.ToCOrder()
	}
	return a, nil
}

func readData(rd *npyio.Reader, dt ndarray.DType, n int) (any, error) {
	switch dt.Kind {
	case ndarray.KindBool:
		return read[bool](rd, n)
	case ndarray.KindInt:
		switch dt.Size {
		case 1:
			return read[int8](rd, n)
		case 2:
			return read[int16](rd, n)
		case 4:
			return read[int32](rd, n)
		case 8:
			return read[int64](rd, n)
		}
	case ndarray.KindUint:
		switch dt.Size {
		case 1:
			return read[uint8](rd, n)
		case 2:
			return read[uint16](rd, n)
		case 4:
			return read[uint32](rd, n)
		case 8:
			return read[uint64](rd, n)
		}
	case ndarray.KindFloat:
		switch dt.Size {
		case 4:
			return read[float32](rd, n)
		case 8:
			return read[float64](rd, n)
		}
	case ndarray.KindComplex:
		switch dt.Size {
		case 8:
			return read[complex64](rd, n)
		case 16:
			return read[complex128](rd, n)
		}
	}
	return nil, fmt.Errorf("%w: %s", ndarray.ErrUnsupportedDType, dt)
}

func read[T any](rd *npyio.Reader, n int) ([]T, error) {
	data := make([]T, n)
	if n == 0 {
		return data, nil
	}
	if err := rd.Read(&data); err != nil {
		return nil, err
	}
	return data, nil
}
