package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mentorhub/mentorhub/internal/config"
	"github.com/mentorhub/mentorhub/internal/models"
	"github.com/mentorhub/mentorhub/internal/testdb"
	"github.com/mentorhub/mentorhub/pkg/logger"
)

func TestBootstrap(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.DSN = filepath.Join(t.TempDir(), "mentorhub.db")
	cfg.Seed.Skills = []string{"Go", "SQL"}
	cfg.Seed.Interests = []string{"Web Development"}

	db, err := bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("bootstrap() error = %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if n := testdb.CountRows(t, db, "skills", ""); n != 2 {
		t.Errorf("skills = %d, expected 2", n)
	}
	if n := testdb.CountRows(t, db, "interests", ""); n != 1 {
		t.Errorf("interests = %d, expected 1", n)
	}

	stale := &models.ActivityLog{Level: "info", Module: "member", Action: "create", CreatedAt: time.Now().AddDate(0, 0, -365)}
	if err := db.Create(stale).Error; err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	logger.InitWithWriter("info", &out)
	defer logger.Init("info")

	// A second run must be a no-op apart from retention.
	if _, err := bootstrap(context.Background(), cfg); err != nil {
		t.Fatalf("second bootstrap() error = %v", err)
	}
	db = models.GetDB()
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if n := testdb.CountRows(t, db, "skills", ""); n != 2 {
		t.Errorf("skills after rerun = %d, expected 2", n)
	}
	if n := testdb.CountRows(t, db, "activity_logs", ""); n != 0 {
		t.Errorf("activity_logs = %d, expected stale entry purged", n)
	}
	if !strings.Contains(out.String(), "Cleaned up 1 activity logs older than 90 days") {
		t.Errorf("cleanup not logged, got %q", out.String())
	}
}

func TestBootstrap_UnsupportedDriver(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.Driver = "oracle"

	if _, err := bootstrap(context.Background(), cfg); err == nil {
		t.Fatal("bootstrap() expected error for unsupported driver")
	}
}
