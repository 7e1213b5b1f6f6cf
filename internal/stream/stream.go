// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stream opens input files and replaces output files, applying
// gzip or zstd (de)compression chosen by file extension.
package stream

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies a whole-file compression wrapper.
type Compression string

const (
	None Compression = ""
	Gzip Compression = "gzip"
	Zstd Compression = "zstd"
)

// ErrExists is returned by Replace when the target exists and overwriting
// is disabled.
var ErrExists = errors.New("file already exists")

// Detect returns the compression implied by the extension of path.
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	return None
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Open opens path for reading and decompresses it when its extension
// names a supported compression.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch Detect(path) {
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("reading gzip header of %s: %w", path, err)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case Zstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening zstd stream %s: %w", path, err)
		}
		return &readCloser{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			f.Close,
		}}, nil
	}
	return f, nil
}

// Written describes a file produced by Replace.
type Written struct {
	Path   string
	Bytes  int64
	SHA256 string
}

// Replace writes a new file at path through fn. The content goes to a
// temporary file in the same directory which is renamed over path only
// after fn and all flushes succeed, so path never holds a partial file.
// Paths ending in .gz or .zst are compressed.
func Replace(path string, overwrite bool, fn func(w io.Writer) error) (Written, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return Written{}, fmt.Errorf("%s: %w", path, ErrExists)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return Written{}, fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	h := sha256.New()
	cw := &countingWriter{w: io.MultiWriter(tmp, h)}

	if err := encode(path, cw, fn); err != nil {
		return Written{}, err
	}
	if err := tmp.Sync(); err != nil {
		return Written{}, fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return Written{}, fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return Written{}, fmt.Errorf("setting mode on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return Written{}, fmt.Errorf("replacing %s: %w", path, err)
	}
	committed = true

	return Written{Path: path, Bytes: cw.n, SHA256: hex.EncodeToString(h.Sum(nil))}, nil
}

func encode(path string, w io.Writer, fn func(w io.Writer) error) error {
	switch Detect(path) {
	case Gzip:
		zw := gzip.NewWriter(w)
		zw.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := fn(zw); err != nil {
			return err
		}
		return zw.Close()
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("creating zstd encoder: %w", err)
		}
		if err := fn(zw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}
	return fn(w)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
