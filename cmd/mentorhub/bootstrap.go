package main

import (
	"context"
	"fmt"

	"github.com/mentorhub/mentorhub/internal/config"
	"github.com/mentorhub/mentorhub/internal/models"
	"github.com/mentorhub/mentorhub/internal/services"
	"github.com/mentorhub/mentorhub/pkg/logger"
	"gorm.io/gorm"
)

// bootstrap prepares the store: connect, migrate, seed and purge expired activity.
func bootstrap(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	// Initialize database
	if err := models.InitDB(&cfg.Database, cfg.Log.SQL); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	db := models.GetDB()

	// Auto migrate database
	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	// Seed default data
	if err := models.SeedDefaultData(db, &cfg.Seed); err != nil {
		logger.Warnf("Failed to seed default data: %v", err)
	}

	deleted, err := services.NewActivityLogService(db).CleanupOldLogs(ctx, cfg.Activity.RetentionDays)
	if err != nil {
		logger.Warnf("Failed to clean up activity logs: %v", err)
	} else if deleted > 0 {
		logger.Infof("Cleaned up %d activity logs older than %d days", deleted, cfg.Activity.RetentionDays)
	}

	return db, nil
}
