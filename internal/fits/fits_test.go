// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fits

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/npy2fits/internal/ndarray"
)

const blockSize = 2880

func ramp(n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i)
	}
	return data
}

func TestNewPrimary_ReversesShape(t *testing.T) {
	img, err := NewPrimary([]int{2, 3, 4}, ramp(24))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2}, img.Axes)
	assert.Equal(t, []int{2, 3, 4}, img.Shape())
	assert.Empty(t, img.Cards)
}

func TestNewPrimary_Scalar(t *testing.T) {
	img, err := NewPrimary(nil, []float32{7})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, img.Axes)
}

func TestNewPrimary_Errors(t *testing.T) {
	_, err := NewPrimary([]int{2, 2}, ramp(3))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = NewPrimary([]int{0}, nil)
	assert.ErrorIs(t, err, ndarray.ErrEmptyArray)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	img, err := NewPrimary([]int{2, 3, 4}, ramp(24))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img))
	assert.Zero(t, buf.Len()%blockSize, "FITS files are a whole number of 2880-byte blocks")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("SIMPLE  =")))

	s, values, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, BitpixFloat32, s.Bitpix)
	assert.Equal(t, []int{4, 3, 2}, s.Axes)
	assert.Equal(t, 24, s.Elements)
	require.Len(t, values, 24)
	for i, v := range values {
		assert.Equal(t, float64(i), v)
	}
	assert.True(t, s.HasRange)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 23.0, s.Max)
}

func TestWrite_Deterministic(t *testing.T) {
	img, err := NewPrimary([]int{3, 5}, ramp(15))
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, img))
	require.NoError(t, Write(&b, img))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestAddRange(t *testing.T) {
	img, err := NewPrimary([]int{4}, []float32{-2.5, 1, 8, 3})
	require.NoError(t, err)
	img.AddRange()
	require.Len(t, img.Cards, 2)
	assert.Equal(t, "DATAMIN", img.Cards[0].Name)
	assert.Equal(t, -2.5, img.Cards[0].Value)
	assert.Equal(t, "DATAMAX", img.Cards[1].Name)
	assert.Equal(t, 8.0, img.Cards[1].Value)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img))
	assert.Contains(t, buf.String(), "DATAMIN")
	assert.Contains(t, buf.String(), "DATAMAX")
}

func TestInspect_Text(t *testing.T) {
	img, err := NewPrimary([]int{2, 3, 4}, ramp(24))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img))
	path := filepath.Join(t.TempDir(), "cube.fits")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	s, err := Inspect(path)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, s.WriteText(&out))

	g := goldie.New(t)
	g.Assert(t, "inspect_cube", out.Bytes())
}

func TestInspect_NotFITS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.fits")
	require.NoError(t, os.WriteFile(path, []byte("junk"), 0o644))
	_, err := Inspect(path)
	assert.Error(t, err)
}
