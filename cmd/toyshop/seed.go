package main

import (
	"github.com/kahvecikaan/toyshop/internal/config"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			if cfg.Store == config.StoreMemory {
				logger.Warn("The in-memory store is seeded on serve; nothing to do")
				return nil
			}

			st, err := openStores(cfg, logger)
			if err != nil {
				logger.Error("Unable to open store", "error", err)
				return err
			}
			defer st.Close()

			return seed(cmd.Context(), st, logger)
		},
	}
}
