// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ndarray holds an in-memory N-dimensional numeric array and the
// precision cast to float32.
package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDType is returned for element types that cannot be
	// narrowed to float32.
	ErrUnsupportedDType = errors.New("unsupported element type")

	// ErrEmptyArray is returned for arrays with a zero-length axis.
	ErrEmptyArray = errors.New("array has no elements")

	// ErrShapeMismatch is returned when the data length disagrees with the shape.
	ErrShapeMismatch = errors.New("data length does not match shape")
)

// Array is an N-dimensional array stored flat in C (row-major) order.
// Data is one of []bool, []int8..[]int64, []uint8..[]uint64, []float32,
// []float64, []complex64 or []complex128.
type Array struct {
	Shape []int
	DType DType
	Data  any
}

// New builds an Array and checks that data holds exactly Elements(shape)
// values of a supported element type.
func New(shape []int, dtype DType, data any) (*Array, error) {
	n, ok := dataLen(data)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDType, data)
	}
	if want := Elements(shape); n != want {
		return nil, fmt.Errorf("%w: %d values for shape %v (%d)", ErrShapeMismatch, n, shape, want)
	}
	return &Array{Shape: append([]int(nil), shape...), DType: dtype, Data: data}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return Elements(a.Shape)
}

// Elements returns the number of elements of an array with the given
// shape. A zero-dimensional shape holds one element.
func Elements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func dataLen(data any) (int, bool) {
	switch v := data.(type) {
	case []bool:
		return len(v), true
	case []int8:
		return len(v), true
	case []int16:
		return len(v), true
	case []int32:
		return len(v), true
	case []int64:
		return len(v), true
	case []uint8:
		return len(v), true
	case []uint16:
		return len(v), true
	case []uint32:
		return len(v), true
	case []uint64:
		return len(v), true
	case []float32:
		return len(v), true
	case []float64:
		return len(v), true
	case []complex64:
		return len(v), true
	case []complex128:
		return len(v), true
	}
	return 0, false
}
