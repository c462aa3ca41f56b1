package main

import (
	"fmt"

	"callcenter-service/seed"

	"github.com/spf13/cobra"
)

// seedCmd returns the seed command
func seedCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample agents, customers, calls and tickets",
		Long: `Migrate the schema and insert the sample data set. Records whose key is
already taken are skipped, so the command can be run repeatedly.`,
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

			repos := newRepositories(cfg, db, nil, appLogger)
			result, err := seed.Run(cmd.Context(), repos.seed(), appLogger)
			if err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d records, skipped %d existing\n", result.Inserted, result.Skipped)
			return nil
		},
	}
}
