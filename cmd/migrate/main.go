// Command migrate applies the database schema and, when seeding is enabled
// in the config, loads the demo dataset.
package main

import (
	"context"
	"log/slog"

	"holodex/config"
	"holodex/internal/database"
	logs "holodex/internal/infra/log"
	"holodex/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(run),
	).Run()
}

func run(db *gorm.DB, cfg *config.Config, logger *slog.Logger, shutdowner fx.Shutdowner) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("schema migration complete")

	if cfg.Seed {
		if err := database.Seed(db, logger); err != nil {
			return err
		}
	}

	return shutdowner.Shutdown()
}
