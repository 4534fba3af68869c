package main

import (
	"github.com/kahvecikaan/toyshop/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			// openDatabase migrates on connect
			db, err := openDatabase(cfg, logger)
			if err != nil {
				logger.Error("Migration failed", "error", err)
				return err
			}
			defer database.Close(db)

			logger.Info("Catalog tables are up to date")
			return nil
		},
	}
}
