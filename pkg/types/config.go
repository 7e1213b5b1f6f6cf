// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

const (
	// DefaultInput is the array file converted when no input is configured.
	DefaultInput = "cosmo512.npy"

	// DefaultOutput is the FITS file written when no output is configured.
	DefaultOutput = "cosmo512.fits"
)

// ConversionConfig holds settings for a single npy-to-FITS conversion.
type ConversionConfig struct {
	// Input is the path of the serialized NumPy array (.npy, optionally .gz or .zst).
	Input string `json:"input" yaml:"input"`

	// Output is the path of the FITS file to write (.fits, optionally .gz).
	Output string `json:"output" yaml:"output"`

	// Overwrite replaces an existing output file (default true). When false,
	// an existing output is an error.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`

	// MinMax adds DATAMIN and DATAMAX cards to the primary header.
	MinMax bool `json:"minmax" yaml:"minmax"`
}

// CatalogConfig holds settings for the optional conversion ledger.
type CatalogConfig struct {
	// Path is the SQLite database file. Empty disables the catalog.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Enabled reports whether conversions should be recorded.
func (c CatalogConfig) Enabled() bool {
	return c.Path != ""
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Verbose lowers the log level to debug.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Config groups all settings read from flags, config file, and environment.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
	Log        LogConfig        `json:"log" yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Conversion: ConversionConfig{
			Input:     DefaultInput,
			Output:    DefaultOutput,
			Overwrite: true,
		},
	}
}

// Conversion is one recorded conversion run.
type Conversion struct {
	ID          string        `json:"id" yaml:"id"`
	Input       string        `json:"input" yaml:"input"`
	Output      string        `json:"output" yaml:"output"`
	SourceDType string        `json:"source_dtype" yaml:"source_dtype"`
	Shape       []int         `json:"shape" yaml:"shape,flow"`
	Elements    int           `json:"elements" yaml:"elements"`
	Bytes       int64         `json:"bytes" yaml:"bytes"`
	SHA256      string        `json:"sha256" yaml:"sha256"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
	ConvertedAt time.Time     `json:"converted_at" yaml:"converted_at"`
}
