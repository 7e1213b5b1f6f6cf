// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/npy2fits/internal/catalog"
	"github.com/pdiddy/npy2fits/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List conversions recorded in the catalog",
	Long: `History lists the most recent conversions recorded in the catalog
database, newest first. The catalog is set with --catalog, the catalog key
of the config file, or NPY2FITS_CATALOG.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := types.CatalogConfig{Path: viper.GetString("catalog")}
	if !cfg.Enabled() {
		return fmt.Errorf("no catalog configured: set --catalog or NPY2FITS_CATALOG")
	}

	cat, err := catalog.Open(cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	w := cmd.OutOrStdout()

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return cat.ExportYAML(cmd.Context(), w, limit)
	}

	convs, err := cat.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	for _, c := range convs {
		fmt.Fprintf(w, "%s  %s  %s -> %s  %s %s  %d bytes\n",
			c.ConvertedAt.Local().Format(time.DateTime), shortID(c.ID),
			c.Input, c.Output, c.SourceDType, formatShape(c.Shape), c.Bytes)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatShape(shape []int) string {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = fmt.Sprint(d)
	}
	return "(" + strings.Join(dims, ", ") + ")"
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of conversions to list")
	historyCmd.Flags().Bool("yaml", false, "print the conversions as YAML")

	rootCmd.AddCommand(historyCmd)
}
