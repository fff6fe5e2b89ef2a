package main

import (
	"fmt"

	"github.com/architeacher/datatable/internal/runtime"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the Postgres migrations of the posts table",
	Long: `Applies every pending migration. With --seed the posts of the HTTP source are
copied into Postgres and cached posts pages are invalidated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		seed, _ := cmd.Flags().GetBool("seed")
		ctx := cmd.Context()

		toolbox, err := runtime.NewToolbox(ctx)
		if err != nil {
			return err
		}
		defer toolbox.Close(ctx)

		result, err := toolbox.Migrate(ctx, seed)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", result.Version)

		if seed {
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts, invalidated %d cached pages\n", result.Seeded, result.Invalidated)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("seed", false, "Copy the HTTP source's posts into Postgres")
}
