// Package config provides Viper-based configuration management for bibctl
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete bibctl configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// BackendConfig contains the GraphQL endpoint settings
type BackendConfig struct {
	Endpoint          string        `mapstructure:"endpoint"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// SessionConfig contains local session persistence settings
type SessionConfig struct {
	// StoragePath overrides where credentials are persisted. Empty
	// means the per-user default location.
	StoragePath string `mapstructure:"storage_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	// A local .env is honored first so the endpoint setting can be
	// shared with the backend's own compose setup.
	_ = godotenv.Load()

	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".bibctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bibctl")
	}

	v.SetEnvPrefix("BIBCTL")
	v.AutomaticEnv()
	_ = v.BindEnv("backend.endpoint", "BIBCTL_BACKEND_ENDPOINT", "GRAPHQL_ENDPOINT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.endpoint", "http://localhost:4000/graphql")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("backend.requests_per_second", 0)
	v.SetDefault("backend.burst", 1)

	v.SetDefault("logging.level", "info")

	v.SetDefault("output.colors", true)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Backend.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend endpoint: %q", cfg.Backend.Endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend endpoint must be http or https, got %q", u.Scheme)
	}

	if cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %s", cfg.Backend.Timeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	return nil
}
