// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/npy2fits/internal/catalog"
	"github.com/pdiddy/npy2fits/internal/convert"
	"github.com/pdiddy/npy2fits/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	res, err := convert.New(cfg.Conversion, logger).Run()
	if err != nil {
		return err
	}

	if !cfg.Catalog.Enabled() {
		return nil
	}
	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer cat.Close()

	rec, err := cat.Record(cmd.Context(), res.Record())
	if err != nil {
		return err
	}
	logger.Debug("Recorded conversion", zap.String("id", rec.ID), zap.String("catalog", cfg.Catalog.Path))
	return nil
}

// loadConfig resolves settings from flags, environment, and config file,
// in that order of precedence.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if v := viper.GetString("input"); v != "" {
		cfg.Conversion.Input = v
	}
	if v := viper.GetString("output"); v != "" {
		cfg.Conversion.Output = v
	}
	cfg.Conversion.Overwrite = viper.GetBool("overwrite")
	cfg.Conversion.MinMax = viper.GetBool("minmax")
	cfg.Catalog.Path = viper.GetString("catalog")
	cfg.Log.Verbose = viper.GetBool("verbose")
	return cfg
}
