// Package config provides configuration loading and management using koanf.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `koanf:"server" validate:"required"`
	DB       DBConfig       `koanf:"db"     validate:"required"`
	Log      LogConfig      `koanf:"log"    validate:"required"`
	CORS     CORSConfig     `koanf:"cors"`
	Featured FeaturedConfig `koanf:"featured"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"             validate:"required"`
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
}

// DBConfig contains Badger store settings.
type DBConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json text"`
}

// CORSConfig contains cross-origin settings for the browser SPA.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// FeaturedConfig controls the featured listing.
type FeaturedConfig struct {
	DefaultLimit int `koanf:"default_limit" validate:"required,min=1"`
}

// Addr returns the host:port the server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             4000,
		"server.read_timeout":     "15s",
		"server.write_timeout":    "15s",
		"server.idle_timeout":     "60s",
		"server.shutdown_timeout": "10s",

		"db.path": "data/badger",

		"log.level":  "info",
		"log.format": "json",

		"cors.allowed_origins": []string{"https://www.codenixlabs.com"},

		"featured.default_limit": 5,
	}
}

// Load loads configuration with the following precedence (highest to
// lowest):
//  1. Environment variables (APP_ prefix)
//  2. Config file (configs/base.yaml)
//  3. Default values
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, "configs/base.yaml"); err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	// Sections are single words, so only the first underscore separates
	// section from key: APP_SERVER_READ_TIMEOUT -> server.read_timeout.
	err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
			1,
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded configuration, failing fast on bad values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
