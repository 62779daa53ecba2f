package cli

import (
	"log"

	"github.com/spf13/cobra"

	"inventory/internal/config"
	"inventory/internal/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  "Applies the products table schema to the database at DATABASE_DSN",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if cfg.DatabaseDSN == "" {
			log.Fatal("DATABASE_DSN is required for migrate")
		}

		db, err := server.OpenDatabase(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := server.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}
		log.Println("Migration complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
