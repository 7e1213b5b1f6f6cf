// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stream

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(w io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"cube.npy", None},
		{"cube.fits", None},
		{"cube.npy.gz", Gzip},
		{"CUBE.FITS.GZ", Gzip},
		{"cube.npy.zst", Zstd},
		{"cube.npy.zstd", Zstd},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.path), tt.path)
	}
}

func TestReplace_RoundTrip(t *testing.T) {
	for _, name := range []string{"plain.txt", "packed.txt.gz", "packed.txt.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			w, err := Replace(path, true, writeString("hello, cube"))
			require.NoError(t, err)

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			sum := sha256.Sum256(raw)
			assert.Equal(t, hex.EncodeToString(sum[:]), w.SHA256)
			assert.Equal(t, int64(len(raw)), w.Bytes)

			rc, err := Open(path)
			require.NoError(t, err)
			defer rc.Close()
			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "hello, cube", string(got))
		})
	}
}

func TestReplace_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fits")
	require.NoError(t, os.WriteFile(path, []byte("a much longer pre-existing content"), 0o644))

	_, err := Replace(path, true, writeString("new"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestReplace_NoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fits")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := Replace(path, false, writeString("new"))
	assert.ErrorIs(t, err, ErrExists)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}

func TestReplace_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fits")
	boom := errors.New("encode failed")

	_, err := Replace(path, true, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no output or temporary file should remain")
}

func TestReplace_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.fits")
	_, err := Replace(path, true, writeString("x"))
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.npy"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_BadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.npy.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}
