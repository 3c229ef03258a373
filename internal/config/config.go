package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Activity ActivityConfig `yaml:"activity"`
	Seed     SeedConfig     `yaml:"seed"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"` // sqlite, mysql, postgres
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	SQL   bool   `yaml:"sql"`   // trace every statement at debug level
}

// ActivityConfig controls the relationship activity log
type ActivityConfig struct {
	RetentionDays int `yaml:"retention_days"`
}

// SeedConfig lists the catalog entries created on first start
type SeedConfig struct {
	Skills    []string `yaml:"skills"`
	Interests []string `yaml:"interests"`
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		fileCfg := DefaultConfig()
		if err := yaml.Unmarshal(data, fileCfg); err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.overrideFromEnv()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:       "sqlite",
			DSN:          "mentorhub.db",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Activity: ActivityConfig{
			RetentionDays: 90,
		},
		Seed: SeedConfig{
			Skills:    []string{"Python", "Go", "JavaScript", "SQL"},
			Interests: []string{"Web Development", "Data Science", "Design Concepts"},
		},
	}
}

func (c *Config) overrideFromEnv() {
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if sql := os.Getenv("LOG_SQL"); sql != "" {
		c.Log.SQL = sql == "true" || sql == "1"
	}
	if days := os.Getenv("LOG_RETENTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Activity.RetentionDays = n
		}
	}
}
