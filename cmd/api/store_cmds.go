package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"findmypet/internal/adapters/storage"
	"findmypet/internal/domain/shelters"
)

var seedSheltersCmd = &cobra.Command{
	Use:   "seed-shelters",
	Short: "Insert the default shelter when the directory is empty",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		stores, err := storage.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = stores.Close(context.Background()) }()

		inserted, err := shelters.NewService(stores.Shelters, nil).EnsureDefault(ctx)
		if err != nil {
			return err
		}
		log.Info("seed shelters done", map[string]any{"store": stores.Driver, "inserted": inserted})
		return nil
	},
}

// migrate: storage.Open ya crea esquema (postgres) o índices (mongo).
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables or indexes for the configured store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		stores, err := storage.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = stores.Close(context.Background()) }()

		log.Info("migration done", map[string]any{"store": stores.Driver})
		return nil
	},
}
