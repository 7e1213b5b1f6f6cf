// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the npy2fits CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/npy2fits/internal/logging"
	"github.com/pdiddy/npy2fits/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// rootCmd converts the configured array file to FITS.
var rootCmd = &cobra.Command{
	Use:   "npy2fits",
	Short: "Convert a NumPy array file to a float32 FITS image",
	Long: `npy2fits loads a serialized NumPy array (.npy), narrows its values to
32-bit floating point, and writes them as the primary image of a FITS file,
replacing any file already at the output path.

With no flags it converts cosmo512.npy to cosmo512.fits in the current
directory. Paths may also come from a config file (npy2fits.yaml) or the
NPY2FITS_INPUT and NPY2FITS_OUTPUT environment variables. A successful run
prints nothing.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("Using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./npy2fits.yaml or ~/.config/npy2fits/config.yaml)")
	pf.String("catalog", "", "SQLite file recording conversions (disabled when empty)")
	pf.BoolP("verbose", "v", false, "log debug output to stderr")

	f := rootCmd.Flags()
	f.StringP("input", "i", types.DefaultInput, "NumPy array file to read (.npy, .npy.gz, .npy.zst)")
	f.StringP("output", "o", types.DefaultOutput, "FITS file to write (.fits or .fits.gz)")
	f.Bool("overwrite", true, "replace an existing output file")
	f.Bool("minmax", false, "add DATAMIN and DATAMAX header cards")

	for _, name := range []string{"catalog", "verbose"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
	for _, name := range []string{"input", "output", "overwrite", "minmax"} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("npy2fits")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "npy2fits"))
		}
	}

	viper.SetEnvPrefix("NPY2FITS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
