// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ndarray

// FortranToC reorders column-major data of the given shape into row-major
// order. The shape is the logical NumPy shape in both cases.
func FortranToC[T any](src []T, shape []int) []T {
	if len(shape) < 2 {
		return append([]T(nil), src...)
	}
	out := make([]T, len(src))
	// Column-major strides: axis 0 varies fastest.
	strides := make([]int, len(shape))
	stride := 1
	for i := range shape {
		strides[i] = stride
		stride *= shape[i]
	}
	idx := make([]int, len(shape))
	off := 0
	for i := range out {
		out[i] = src[off]
		// Advance the C-order index, last axis fastest.
		for ax := len(shape) - 1; ax >= 0; ax-- {
			idx[ax]++
			off += strides[ax]
			if idx[ax] < shape[ax] {
				break
			}
			off -= strides[ax] * shape[ax]
			idx[ax] = 0
		}
	}
	return out
}

// ToCOrder converts the array data from Fortran order to C order in place
// of the Data field.
func (a *Array) ToCOrder() {
	switch v := a.Data.(type) {
	case []bool:
		a.Data = FortranToC(v, a.Shape)
	case []int8:
		a.Data = FortranToC(v, a.Shape)
	case []int16:
		a.Data = FortranToC(v, a.Shape)
	case []int32:
		a.Data = FortranToC(v, a.Shape)
	case []int64:
		a.Data = FortranToC(v, a.Shape)
	case []uint8:
		a.Data = FortranToC(v, a.Shape)
	case []uint16:
		a.Data = FortranToC(v, a.Shape)
	case []uint32:
		a.Data = FortranToC(v, a.Shape)
	case []uint64:
		a.Data = FortranToC(v, a.Shape)
	case []float32:
		a.Data = FortranToC(v, a.Shape)
	case []float64:
		a.Data = FortranToC(v, a.Shape)
	case []complex64:
		a.Data = FortranToC(v, a.Shape)
	case []complex128:
		a.Data = FortranToC(v, a.Shape)
	}
}
