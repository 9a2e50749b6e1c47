package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marketer_backend/internal/app/di"
	"marketer_backend/internal/platform/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbCfg := cfg.DB
		dbCfg.RunMigrations = false
		database, err := db.Open(dbCfg)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		models := di.Models()
		if err := db.Migrate(database, models...); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrated %d tables\n", len(models))
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
