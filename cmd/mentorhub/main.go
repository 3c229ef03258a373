package main

import (
	"context"
	"os"

	"github.com/mentorhub/mentorhub/internal/config"
	"github.com/mentorhub/mentorhub/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	db, err := bootstrap(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Bootstrap failed")
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("Store ready")

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}
}
