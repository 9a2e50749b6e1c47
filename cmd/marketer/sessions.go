package main

import (
	"fmt"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"marketer_backend/internal/app/cleanup"
	"marketer_backend/internal/app/di"
	"marketer_backend/internal/platform/db"
	infraredis "marketer_backend/internal/platform/redis"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage refresh-token sessions",
}

var sessionsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var rdb *redisv9.Client
		if cfg.Redis.Enabled() {
			client, err := infraredis.NewRedisClient(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()
			rdb = client
		}

		dbCfg := cfg.DB
		dbCfg.RunMigrations = false
		database, err := db.Open(dbCfg)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		n, err := cleanup.PurgeSessions(ctx, di.NewSessionRepository(rdb, database))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired sessions\n", n)
		return err
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsPurgeCmd)
	rootCmd.AddCommand(sessionsCmd)
}
