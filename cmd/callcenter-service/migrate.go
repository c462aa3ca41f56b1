package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// migrateCmd returns the migrate command
func migrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			appLogger := newLogger(cfg)

			db, err := openDatabase(cfg, true)
			if err != nil {
				return err
			}
			defer db.Close()

			appLogger.Info("Database schema is up to date", "driver", cfg.Infrastructure.Database.Driver)
			return nil
		},
	}
}
