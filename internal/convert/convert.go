// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a NumPy array file into a single-HDU FITS file:
// load, narrow to float32, wrap as the primary HDU, write.
package convert

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/npy2fits/internal/fits"
	"github.com/pdiddy/npy2fits/internal/ndarray"
	"github.com/pdiddy/npy2fits/internal/npy"
	"github.com/pdiddy/npy2fits/internal/stream"
	"github.com/pdiddy/npy2fits/pkg/types"
)

// ErrOutputExists is returned when the output exists and overwriting is
// disabled.
var ErrOutputExists = stream.ErrExists

// Loader reads an array from a path. npy.Load is the production loader.
type Loader func(path string) (*ndarray.Array, error)

// Result describes a completed conversion.
type Result struct {
	Input       string
	Output      string
	SourceDType ndarray.DType
	Shape       []int
	Elements    int
	Bytes       int64
	SHA256      string
	Duration    time.Duration
}

// Record returns the catalog record for the result.
func (r Result) Record() types.Conversion {
	return types.Conversion{
		Input:       r.Input,
		Output:      r.Output,
		SourceDType: r.SourceDType.Name(),
		Shape:       r.Shape,
		Elements:    r.Elements,
		Bytes:       r.Bytes,
		SHA256:      r.SHA256,
		Duration:    r.Duration,
	}
}

// Converter runs the npy-to-FITS conversion.
type Converter struct {
	cfg    types.ConversionConfig
	load   Loader
	logger *zap.Logger
	now    func() time.Time
}

// New returns a Converter for cfg. Empty paths fall back to the defaults.
// A nil logger discards log output.
func New(cfg types.ConversionConfig, logger *zap.Logger) *Converter {
	if cfg.Input == "" {
		cfg.Input = types.DefaultInput
	}
	if cfg.Output == "" {
		cfg.Output = types.DefaultOutput
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{cfg: cfg, load: npy.Load, logger: logger, now: time.Now}
}

// Run loads the input array, narrows it to float32, wraps it as a FITS
// primary HDU and writes it to the output path. The input is fully loaded
// before the output is touched, so a failed load leaves no output.
func (c *Converter) Run() (Result, error) {
	start := c.now()
	log := c.logger.With(zap.String("input", c.cfg.Input), zap.String("output", c.cfg.Output))

	arr, err := c.load(c.cfg.Input)
	if err != nil {
		return Result{}, err
	}
	log.Debug("Loaded array",
		zap.Ints("shape", arr.Shape),
		zap.String("dtype", arr.DType.Name()))

	if arr.DType.IsComplex() {
		log.Warn("Casting complex values to float32 discards the imaginary part")
	}

	data, err := arr.Float32()
	if err != nil {
		return Result{}, fmt.Errorf("casting %s to float32: %w", c.cfg.Input, err)
	}

	img, err := fits.NewPrimary(arr.Shape, data)
	if err != nil {
		return Result{}, fmt.Errorf("wrapping %s as primary HDU: %w", c.cfg.Input, err)
	}
	if c.cfg.MinMax {
		img.AddRange()
	}

	written, err := stream.Replace(c.cfg.Output, c.cfg.Overwrite, func(w io.Writer) error {
		return fits.Write(w, img)
	})
	if err != nil {
		if errors.Is(err, stream.ErrExists) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("writing %s: %w", c.cfg.Output, err)
	}

	res := Result{
		Input:       c.cfg.Input,
		Output:      written.Path,
		SourceDType: arr.DType,
		Shape:       append([]int(nil), arr.Shape...),
		Elements:    len(data),
		Bytes:       written.Bytes,
		SHA256:      written.SHA256,
		Duration:    c.now().Sub(start),
	}
	log.Debug("Wrote FITS file",
		zap.Int64("bytes", res.Bytes),
		zap.String("sha256", res.SHA256),
		zap.Duration("duration", res.Duration))
	return res, nil
}
