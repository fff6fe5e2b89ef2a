package main

import (
	"fmt"

	"github.com/architeacher/datatable/internal/config"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		version := config.ServiceVersion
		if version == "" {
			version = "dev"
		}

		fmt.Fprintf(cmd.OutOrStdout(), "datatable %s (%s)\n", version, config.CommitSHA)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
