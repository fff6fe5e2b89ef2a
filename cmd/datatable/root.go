package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datatable",
	Short: "Interactive data tables over paged record sources",
	Long: `datatable serves sortable, filterable and paginated views of record sources
over HTTP, and queries them from the terminal. Configuration is read from the environment.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
