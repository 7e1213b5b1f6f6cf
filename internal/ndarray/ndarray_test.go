// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ndarray

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDType(t *testing.T) {
	tests := []struct {
		descr     string
		want      DType
		name      string
		supported bool
		wantErr   bool
	}{
		{descr: "<f8", want: DType{'<', KindFloat, 8}, name: "float64", supported: true},
		{descr: ">f4", want: DType{'>', KindFloat, 4}, name: "float32", supported: true},
		{descr: "|u1", want: DType{'|', KindUint, 1}, name: "uint8", supported: true},
		{descr: "<i8", want: DType{'<', KindInt, 8}, name: "int64", supported: true},
		{descr: "|b1", want: DType{'|', KindBool, 1}, name: "bool", supported: true},
		{descr: "<c16", want: DType{'<', KindComplex, 16}, name: "complex128", supported: true},
		{descr: "<f2", want: DType{'<', KindFloat, 2}, name: "float16", supported: false},
		{descr: "<U10", want: DType{'<', 'U', 10}, name: "<U10", supported: false},
		{descr: "f8", wantErr: true},
		{descr: "<fx", wantErr: true},
		{descr: "!f8", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.descr, func(t *testing.T) {
			got, err := ParseDType(tt.descr)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedDType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.descr, got.String())
			assert.Equal(t, tt.name, got.Name())
			assert.Equal(t, tt.supported, got.Supported())
		})
	}
}

func TestNew_ShapeMismatch(t *testing.T) {
	_, err := New([]int{2, 3}, DType{'<', KindFloat, 8}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New([]int{2}, DType{'|', 'O', 8}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestFloat32_PreservesShapeAndNarrows(t *testing.T) {
	src := []float64{0, 1.5, -2.25, math.Pi, 1e-50, 1e300}
	a, err := New([]int{2, 3}, DType{'<', KindFloat, 8}, src)
	require.NoError(t, err)

	cast, err := a.Cast()
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, cast.Shape)
	assert.Equal(t, "float32", cast.DType.Name())

	got := cast.Data.([]float32)
	require.Len(t, got, len(src))
	for i, v := range src {
		assert.Equal(t, float32(v), got[i], "index %d", i)
	}
	assert.Equal(t, float32(0), got[4], "underflow rounds to zero")
	assert.True(t, math.IsInf(float64(got[5]), 1), "overflow becomes +Inf")
}

func TestFloat32_Kinds(t *testing.T) {
	tests := []struct {
		name string
		data any
		want []float32
	}{
		{"bool", []bool{true, false, true}, []float32{1, 0, 1}},
		{"int8", []int8{-128, 0, 127}, []float32{-128, 0, 127}},
		{"int16", []int16{-1, 2, 3}, []float32{-1, 2, 3}},
		{"int32", []int32{1 << 24, (1 << 24) + 1, 7}, []float32{16777216, 16777216, 7}},
		{"int64", []int64{-5, 0, 5}, []float32{-5, 0, 5}},
		{"uint8", []uint8{0, 128, 255}, []float32{0, 128, 255}},
		{"uint16", []uint16{1, 2, 65535}, []float32{1, 2, 65535}},
		{"uint32", []uint32{0, 1, 2}, []float32{0, 1, 2}},
		{"uint64", []uint64{0, 1, 1 << 40}, []float32{0, 1, 1 << 40}},
		{"float32", []float32{0.1, 0.2, 0.3}, []float32{0.1, 0.2, 0.3}},
		{"complex64", []complex64{complex(1, 9), complex(-2, 1), 0}, []float32{1, -2, 0}},
		{"complex128", []complex128{complex(0.5, 1), 3, complex(-1, -1)}, []float32{0.5, 3, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Array{Shape: []int{3}, Data: tt.data}
			got, err := a.Float32()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Float32() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFloat32_CopiesFloat32Input(t *testing.T) {
	src := []float32{1, 2}
	a := &Array{Shape: []int{2}, Data: src}
	got, err := a.Float32()
	require.NoError(t, err)
	got[0] = 42
	assert.Equal(t, float32(1), src[0])
}

func TestFloat32_Errors(t *testing.T) {
	empty := &Array{Shape: []int{0, 4}, Data: []float64{}}
	_, err := empty.Float32()
	assert.ErrorIs(t, err, ErrEmptyArray)

	strs := &Array{Shape: []int{1}, DType: DType{'<', 'U', 4}, Data: []string{"x"}}
	_, err = strs.Float32()
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestElements(t *testing.T) {
	assert.Equal(t, 1, Elements(nil))
	assert.Equal(t, 24, Elements([]int{2, 3, 4}))
	assert.Equal(t, 0, Elements([]int{3, 0}))
}

func TestFortranToC(t *testing.T) {
	// Logical 2x3 array [[1 2 3] [4 5 6]] stored column-major.
	fortran := []int{1, 4, 2, 5, 3, 6}
	got := FortranToC(fortran, []int{2, 3})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)

	// 2x2x2: element (i,j,k) has value 100i+10j+k.
	shape := []int{2, 2, 2}
	col := make([]int, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				col[i+2*j+4*k] = 100*i + 10*j + k
			}
		}
	}
	want := []int{0, 1, 10, 11, 100, 101, 110, 111}
	assert.Equal(t, want, FortranToC(col, shape))

	// One-dimensional data is unchanged.
	assert.Equal(t, []int{3, 2, 1}, FortranToC([]int{3, 2, 1}, []int{3}))
}

func TestToCOrder(t *testing.T) {
	a := &Array{Shape: []int{2, 3}, Data: []float64{1, 4, 2, 5, 3, 6}}
	a.ToCOrder()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data)
}

func TestRange(t *testing.T) {
	lo, hi, ok := Range([]float32{3, float32(math.NaN()), -1, float32(math.Inf(1)), 2})
	require.True(t, ok)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)

	_, _, ok = Range([]float64{math.NaN()})
	assert.False(t, ok)
}
