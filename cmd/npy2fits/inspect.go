// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/npy2fits/internal/fits"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.fits>",
	Short: "Summarize the primary HDU of a FITS file",
	Long: `Inspect reads the primary HDU of a FITS file (optionally gzip-compressed)
and prints its BITPIX, axis lengths, element count, and, for floating-point
images, the finite value range.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := fits.Inspect(args[0])
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if !asYAML {
		return s.WriteText(cmd.OutOrStdout())
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func init() {
	inspectCmd.Flags().Bool("yaml", false, "print the summary as YAML")

	rootCmd.AddCommand(inspectCmd)
}
