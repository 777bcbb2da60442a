package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when no path is given. A missing file is fine.
const DefaultConfigFile = "tasklist.yaml"

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv string `yaml:"appEnv"`

	// Logging
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`

	// Shell
	ActivityLog bool `yaml:"activityLog"` // log every task event at info level
	ShowBanner  bool `yaml:"showBanner"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	cfg := baseConfig()
	cfg.applyDerivedDefaults()
	return cfg
}

func baseConfig() *Config {
	return &Config{
		AppEnv:      "development",
		LogLevel:    "warn",
		ActivityLog: false,
		ShowBanner:  true,
	}
}

// Load builds the configuration in three layers: defaults, the optional YAML
// file at path (DefaultConfigFile or TASKLIST_CONFIG when path is empty), and
// finally environment variables, which may come from a .env file.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := baseConfig()

	if path == "" {
		path = getEnv("TASKLIST_CONFIG", DefaultConfigFile)
	}
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()
	cfg.applyDerivedDefaults()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.ActivityLog = getBoolEnv("TASKLIST_ACTIVITY_LOG", c.ActivityLog)
	c.ShowBanner = getBoolEnv("TASKLIST_BANNER", c.ShowBanner)
}

// applyDerivedDefaults fills settings whose default depends on AppEnv.
func (c *Config) applyDerivedDefaults() {
	if c.LogFormat == "" {
		if c.IsProduction() {
			c.LogFormat = "json"
		} else {
			c.LogFormat = "text"
		}
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
