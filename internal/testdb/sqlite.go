package testdb

import (
	"path/filepath"
	"testing"

	"github.com/mentorhub/mentorhub/internal/config"
	"github.com/mentorhub/mentorhub/internal/models"
	"gorm.io/gorm"
)

// Setup opens a fresh migrated SQLite store under t.TempDir(). Each test gets
// its own database file, so tests in different packages can run in parallel.
//
// Usage:
//
//	func TestMyService(t *testing.T) {
//	    db := testdb.Setup(t)
//	    svc := services.NewMyService(db)
//	    // ... test
//	}
func Setup(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := models.Open(cfg, false)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// CountRows returns the number of rows in table matching the optional condition.
func CountRows(t *testing.T, db *gorm.DB, table string, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	q := db.Table(table)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
