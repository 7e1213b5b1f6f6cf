// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fits

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/astrogo/fitsio"

	"github.com/pdiddy/npy2fits/internal/ndarray"
	"github.com/pdiddy/npy2fits/internal/stream"
)

// Summary describes the primary HDU of a FITS file.
type Summary struct {
	Name     string  `json:"name" yaml:"name"`
	Bitpix   int     `json:"bitpix" yaml:"bitpix"`
	Axes     []int   `json:"axes" yaml:"axes,flow"`
	Elements int     `json:"elements" yaml:"elements"`
	HasRange bool    `json:"has_range" yaml:"has_range"`
	Min      float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Inspect opens the FITS file at path (gzip aware) and summarizes its
// primary HDU.
func Inspect(path string) (Summary, error) {
	rc, err := stream.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("opening FITS file %s: %w", path, err)
	}
	defer rc.Close()

	s, _, err := Read(rc)
	if err != nil {
		return Summary{}, fmt.Errorf("inspecting %s: %w", path, err)
	}
	s.Name = filepath.Base(path)
	return s, nil
}

// Read decodes the primary HDU from r. For floating-point images it also
// returns the payload as float64 values and fills the value range.
func Read(r io.Reader) (Summary, []float64, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("decoding FITS stream: %w", err)
	}
	defer f.Close()

	if len(f.HDUs()) == 0 {
		return Summary{}, nil, ErrNotImage
	}
	img, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return Summary{}, nil, ErrNotImage
	}

	hdr := img.Header()
	s := Summary{
		Bitpix: hdr.Bitpix(),
		Axes:   append([]int(nil), hdr.Axes()...),
	}
	s.Elements = ndarray.Elements(s.Axes)
	if len(s.Axes) == 0 {
		s.Elements = 0
	}

	var values []float64
	switch s.Bitpix {
	case -32:
		data := make([]float32, s.Elements)
		if err := img.Read(&data); err != nil {
			return Summary{}, nil, fmt.Errorf("reading float32 payload: %w", err)
		}
		values = make([]float64, len(data))
		for i, v := range data {
			values[i] = float64(v)
		}
	case -64:
		data := make([]float64, s.Elements)
		if err := img.Read(&data); err != nil {
			return Summary{}, nil, fmt.Errorf("reading float64 payload: %w", err)
		}
		values = data
	}
	if values != nil {
		s.Min, s.Max, s.HasRange = ndarray.Range(values)
	}
	return s, values, nil
}

// WriteText prints the summary as aligned "key: value" lines.
func (s Summary) WriteText(w io.Writer) error {
	lines := [][2]string{
		{"file", s.Name},
		{"hdu", "primary"},
		{"bitpix", strconv.Itoa(s.Bitpix)},
		{"naxis", strconv.Itoa(len(s.Axes))},
	}
	for i, d := range s.Axes {
		lines = append(lines, [2]string{"naxis" + strconv.Itoa(i+1), strconv.Itoa(d)})
	}
	lines = append(lines, [2]string{"elements", strconv.Itoa(s.Elements)})
	if s.HasRange {
		lines = append(lines,
			[2]string{"min", strconv.FormatFloat(s.Min, 'g', -1, 64)},
			[2]string{"max", strconv.FormatFloat(s.Max, 'g', -1, 64)},
		)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-10s%s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}
	return nil
}
