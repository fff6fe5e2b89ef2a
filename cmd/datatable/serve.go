package main

import (
	"github.com/architeacher/datatable/internal/runtime"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the public API, the admin server and the gRPC health server",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		runtime.New().Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
