// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ndarray

import "fmt"

type number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float32 returns the array values narrowed to float32, in the same order.
// Conversion uses Go's round-to-nearest-even; out-of-range magnitudes
// become ±Inf. Complex values keep only their real part.
func (a *Array) Float32() ([]float32, error) {
	if a.Len() == 0 {
		return nil, ErrEmptyArray
	}
	switch v := a.Data.(type) {
	case []bool:
		out := make([]float32, len(v))
		for i, b := range v {
			if b {
				out[i] = 1
			}
		}
		return out, nil
	case []int8:
		return narrow(v), nil
	case []int16:
		return narrow(v), nil
	case []int32:
		return narrow(v), nil
	case []int64:
		return narrow(v), nil
	case []uint8:
		return narrow(v), nil
	case []uint16:
		return narrow(v), nil
	case []uint32:
		return narrow(v), nil
	case []uint64:
		return narrow(v), nil
	case []float32:
		return append([]float32(nil), v...), nil
	case []float64:
		return narrow(v), nil
	case []complex64:
		out := make([]float32, len(v))
		for i, c := range v {
			out[i] = float32(real(c))
		}
		return out, nil
	case []complex128:
		out := make([]float32, len(v))
		for i, c := range v {
			out[i] = float32(real(c))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDType, a.DType)
}

// Cast returns a new float32 array with the same shape.
func (a *Array) Cast() (*Array, error) {
	data, err := a.Float32()
	if err != nil {
		return nil, err
	}
	return &Array{
		Shape: append([]int(nil), a.Shape...),
		DType: DType{Order: '<', Kind: KindFloat, Size: 4},
		Data:  data,
	}, nil
}

func narrow[T number](src []T) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}
