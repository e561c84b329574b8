// Package config loads the service configuration from a YAML file, applies
// defaults and honors environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string `yaml:"addr"`
	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// DataConfig locates the lexical data.
type DataConfig struct {
	// Dir is the path to the Collatinus data directory.
	Dir string `yaml:"dir"`
	// Watch enables reloading the lexicon when files in Dir change.
	Watch bool `yaml:"watch"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Load reads the YAML file at path. An empty path yields the defaults.
// Environment variables override file values in either case.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LATIN_ANALYZER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LATIN_ANALYZER_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("LATIN_ANALYZER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
