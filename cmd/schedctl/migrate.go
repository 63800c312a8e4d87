package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"homecare-scheduler/internal/repository"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, pool, logger, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := repository.NewMigrator(pool, logger).Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	})
	return cmd
}
