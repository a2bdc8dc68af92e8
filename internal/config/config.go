package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "ARCHIVE_CATALOG_CONFIG"
	baseDirEnv     = "ARCHIVE_CATALOG_BASE_DIR"
	databaseDSNEnv = "DATABASE_DSN"
)

// Config holds the settings shared across the subcommands.
type Config struct {
	BaseDir  string         `yaml:"baseDir"`
	Page     PageConfig     `yaml:"page"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Fetch    FetchConfig    `yaml:"fetch"`
}

// PageConfig shapes the rendered catalogue page.
type PageConfig struct {
	Title string `yaml:"title"`
}

// DatabaseConfig describes the optional run-store connection. An empty DSN
// disables persistence entirely.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FetchConfig defaults for the index-page scraper.
type FetchConfig struct {
	Source string `yaml:"source"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(baseDirEnv); v != "" {
		c.BaseDir = v
	}
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.BaseDir != "" {
		base.BaseDir = override.BaseDir
	}
	if override.Page.Title != "" {
		base.Page.Title = override.Page.Title
	}
	if override.Database.DSN != "" {
		base.Database = override.Database
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Fetch.Source != "" {
		base.Fetch.Source = override.Fetch.Source
	}
	return base
}

func defaultConfig() Config {
	return Config{
		BaseDir: ".",
		Page:    PageConfig{Title: "DEC Online Systems and Options Catalogue"},
		Logging: LoggingConfig{Level: "info"},
		Fetch:   FetchConfig{Source: "index"},
	}
}
