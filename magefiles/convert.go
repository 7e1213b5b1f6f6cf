//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts the default array file
// (cosmo512.npy -> cosmo512.fits). NPY2FITS_* variables are passed through.
func Convert() error {
	mg.Deps(Build)
	return sh.RunWithV(map[string]string{
		"NPY2FITS_VERBOSE": os.Getenv("NPY2FITS_VERBOSE"),
	}, "bin/npy2fits")
}

// Inspect builds the CLI and summarizes the default output file.
func Inspect() error {
	mg.Deps(Build)
	return sh.RunV("bin/npy2fits", "inspect", "cosmo512.fits")
}
