package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/migrations"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDB(cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			switch args[0] {
			case "up":
				err = migrations.Up(ctx, db, log)
			case "down":
				err = migrations.Down(ctx, db, log)
			case "status":
				err = migrations.Status(ctx, db, log)
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}

			log.Info("Migrate %s finished", args[0])
			return nil
		},
	}
}
