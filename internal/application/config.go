// Package application orchestrates the scoring pipeline over the
// repository ports and carries the service configuration.
package application

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vetmed/research-day/internal/domain"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Config is the full service configuration, loaded from YAML.
type Config struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Database DatabaseConfig `yaml:"database" validate:"required"`
	Redis    RedisConfig    `yaml:"redis"`

	// Categories overrides the built-in award structure when set.
	// Leave empty to use domain.AwardCategories.
	Categories []domain.AwardCategory `yaml:"categories" validate:"omitempty,dive"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`

	// AllowedOrigins is the CORS allow-list for the browser client.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// SubmitRatePerSecond caps score submissions; 0 disables the
	// limiter.
	SubmitRatePerSecond float64 `yaml:"submit_rate_per_second" validate:"min=0"`
	SubmitBurst         int     `yaml:"submit_burst" validate:"min=0"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver" validate:"required,oneof=sqlite postgres"`
	DSN    string `yaml:"dsn"`
}

// RedisConfig enables the optional live-leaderboard mirror.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"required_if=Enabled true"`
}

// DefaultConfig returns a runnable local configuration: embedded
// sqlite, permissive CORS for a local client, modest submission rate.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:                ":8080",
			AllowedOrigins:      []string{"http://localhost:3000"},
			SubmitRatePerSecond: 10,
			SubmitBurst:         20,
		},
		Database: DatabaseConfig{Driver: "sqlite"},
	}
}

// LoadConfig reads a YAML configuration file, overlaying it onto the
// defaults, and validates the result. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// AwardCategories resolves the effective award structure.
func (c Config) AwardCategories() []domain.AwardCategory {
	if len(c.Categories) > 0 {
		return c.Categories
	}
	return domain.AwardCategories
}
