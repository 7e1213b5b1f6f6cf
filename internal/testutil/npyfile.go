// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testutil writes NumPy fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EncodeNPY returns a version 1.0 .npy file holding data with the given
// dtype descriptor and shape. data must be a slice of a fixed-size type
// matching descr; it is written in the byte order named by descr.
func EncodeNPY(t testing.TB, descr string, shape []int, fortran bool, data any) []byte {
	t.Helper()

	var dims []string
	for _, d := range shape {
		dims = append(dims, fmt.Sprint(d))
	}
	shapeStr := "(" + strings.Join(dims, ", ")
	if len(shape) == 1 {
		shapeStr += ","
	}
	shapeStr += ")"

	order := "False"
	if fortran {
		order = "True"
	}
	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': %s, }", descr, order, shapeStr)

	// magic(6) + version(2) + header length(2) + dict + padding + '\n' is a
	// multiple of 64.
	const prefix = 10
	pad := 64 - (prefix+len(dict)+1)%64
	if pad == 64 {
		pad = 0
	}
	header := dict + strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(header)

	var byteOrder binary.ByteOrder = binary.LittleEndian
	if strings.HasPrefix(descr, ">") {
		byteOrder = binary.BigEndian
	}
	if err := binary.Write(&buf, byteOrder, data); err != nil {
		t.Fatalf("encoding npy payload: %v", err)
	}
	return buf.Bytes()
}

// WriteNPY writes a little-endian C-order fixture to dir/name and returns its path.
func WriteNPY(t testing.TB, dir, name, descr string, shape []int, data any) string {
	t.Helper()
	return WriteFile(t, dir, name, EncodeNPY(t, descr, shape, false, data))
}

// WriteFile writes content to dir/name and returns its path.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
