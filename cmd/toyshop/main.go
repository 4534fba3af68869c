package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "toyshop",
		Short: "Toy Catalog API",
		Long: "Serves the toy catalog REST API. Settings are read from the environment " +
			"(BIND_ADDRESS, LOG_LEVEL, STORE, DATABASE_URL, SQLITE_PATH, CORS_ORIGINS, SEED) " +
			"and from a .env file when present.",
		SilenceUsage: true,
		// Serving is the default action
		RunE: runServe,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}
