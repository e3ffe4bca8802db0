package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendSQLite = "sqlite" // local database file (default)
	BackendFile   = "file"   // one JSON document per app id
	BackendRedis  = "redis"  // local/dev Redis server
)

// DirName is the per-project directory holding config and data.
const DirName = ".leadfunnel"

// DefaultAppID keys the lead collection when nothing else is configured.
const DefaultAppID = "coldCallingLeads"

// Config represents the leadfunnel configuration.
// File values are read first; environment variables override them.
type Config struct {
	Version     string `json:"version"`
	AppID       string `json:"app_id" env:"LEADFUNNEL_APP_ID"`
	Backend     string `json:"backend" env:"LEADFUNNEL_BACKEND"`               // sqlite, file or redis
	DataDir     string `json:"data_dir,omitempty" env:"LEADFUNNEL_DATA_DIR"`   // defaults to <dir>/.leadfunnel
	DBPath      string `json:"db_path,omitempty" env:"LEADFUNNEL_DB_PATH"`     // defaults to <data_dir>/leadfunnel.db
	RedisAddr   string `json:"redis_addr,omitempty" env:"LEADFUNNEL_REDIS_ADDR"` // host:port or redis:// URL
	Timezone    string `json:"timezone,omitempty" env:"LEADFUNNEL_TIMEZONE"`   // IANA name; empty means local
	PhoneRegion string `json:"phone_region" env:"LEADFUNNEL_PHONE_REGION"`     // ISO 3166 region for national numbers
	LogLevel    string `json:"log_level" env:"LOG_LEVEL"`
	LogFormat   string `json:"log_format" env:"LOG_FORMAT"` // text or json
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:     "1",
		AppID:       DefaultAppID,
		Backend:     BackendSQLite,
		RedisAddr:   "localhost:6379",
		PhoneRegion: "US",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// LoadConfig reads .leadfunnel/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, DirName, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Resolve builds the effective configuration for dir:
// <dir>/.env is loaded into the environment (existing variables win), then
// config.json (or defaults when absent), then environment overrides.
func Resolve(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(dir, DirName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted later.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendSQLite, BackendFile, BackendRedis)
	}
	if c.AppID == "" {
		return errors.New("app_id must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the reporting time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DatabasePath returns the sqlite file path.
func (c *Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(c.DataDir, "leadfunnel.db")
}

// SnapshotDir returns the directory used by the file backend.
func (c *Config) SnapshotDir() string {
	return filepath.Join(c.DataDir, "snapshots")
}

// LogPath returns the rotating log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "leadfunnel.log")
}
