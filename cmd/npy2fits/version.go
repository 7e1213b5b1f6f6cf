package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of npy2fits",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "npy2fits %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
