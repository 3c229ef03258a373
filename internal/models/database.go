package models

import (
	"fmt"
	"strings"

	"github.com/mentorhub/mentorhub/internal/config"
	"github.com/mentorhub/mentorhub/pkg/logger"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

// Open connects to the configured store without touching the global handle.
func Open(cfg *config.DatabaseConfig, traceSQL bool) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.DSN))
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger:         logger.NewGormLogger(traceSQL),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.SetupJoinTable(&Mentorship{}, "Skills", &MentorshipSkill{}); err != nil {
		return nil, fmt.Errorf("failed to set up mentorship skills: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return db, nil
}

func InitDB(cfg *config.DatabaseConfig, traceSQL bool) error {
	db, err := Open(cfg, traceSQL)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// sqliteDSN turns on foreign keys so deleting a member cascades to its
// mentorships, and sets a busy timeout for concurrent writers.
func sqliteDSN(dsn string) string {
	params := make([]string, 0, 2)
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk=") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Interest{},
		&Skill{},
		&Member{},
		&Mentorship{},
		&MemberSkill{},
		&Project{},
		&MemberLink{},
		&ProjectLink{},
		&ActivityLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates the catalog skills and interests if not exists
func SeedDefaultData(db *gorm.DB, seed *config.SeedConfig) error {
	for _, name := range seed.Skills {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Skill{Name: name}).Error; err != nil {
			return fmt.Errorf("seed skill %q: %w", name, err)
		}
	}

	for _, name := range seed.Interests {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Interest{Name: name}).Error; err != nil {
			return fmt.Errorf("seed interest %q: %w", name, err)
		}
	}

	return nil
}
