// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ndarray

import (
	"fmt"
	"strconv"
)

// Kind is the NumPy type character of a dtype ('b', 'i', 'u', 'f', 'c', ...).
type Kind byte

const (
	KindBool    Kind = 'b'
	KindInt     Kind = 'i'
	KindUint    Kind = 'u'
	KindFloat   Kind = 'f'
	KindComplex Kind = 'c'
)

// DType is a parsed NumPy array-protocol type string such as "<f8".
type DType struct {
	// Order is the byte order character: '<', '>', '|' or '='.
	Order byte
	Kind  Kind
	// Size is the item size in bytes.
	Size int
}

// ParseDType parses a simple NumPy descriptor. Structured and
// sub-array descriptors are rejected.
func ParseDType(descr string) (DType, error) {
	if len(descr) < 3 {
		return DType{}, fmt.Errorf("%w: %q", ErrUnsupportedDType, descr)
	}
	order := descr[0]
	switch order {
	case '<', '>', '|', '=':
	default:
		return DType{}, fmt.Errorf("%w: %q: bad byte order %q", ErrUnsupportedDType, descr, order)
	}
	size, err := strconv.Atoi(descr[2:])
	if err != nil || size <= 0 {
		return DType{}, fmt.Errorf("%w: %q: bad item size", ErrUnsupportedDType, descr)
	}
	return DType{Order: order, Kind: Kind(descr[1]), Size: size}, nil
}

// String returns the descriptor in NumPy notation.
func (d DType) String() string {
	return string([]byte{d.Order, byte(d.Kind)}) + strconv.Itoa(d.Size)
}

// Name returns the NumPy dtype name, e.g. "float64" or "uint8".
func (d DType) Name() string {
	bits := strconv.Itoa(d.Size * 8)
	switch d.Kind {
	case KindBool:
		return "bool"
	case KindInt:
		return "int" + bits
	case KindUint:
		return "uint" + bits
	case KindFloat:
		return "float" + bits
	case KindComplex:
		return "complex" + bits
	}
	return d.String()
}

// Supported reports whether values of this dtype can be narrowed to float32.
func (d DType) Supported() bool {
	switch d.Kind {
	case KindBool:
		return d.Size == 1
	case KindInt, KindUint:
		return d.Size == 1 || d.Size == 2 || d.Size == 4 || d.Size == 8
	case KindFloat:
		return d.Size == 4 || d.Size == 8
	case KindComplex:
		return d.Size == 8 || d.Size == 16
	}
	return false
}

// IsComplex reports whether the dtype carries an imaginary part.
func (d DType) IsComplex() bool {
	return d.Kind == KindComplex
}
