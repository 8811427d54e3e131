// Package config loads application configuration from an optional JSON
// config file, environment variables (GEIGER_ prefix) and defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Host string `mapstructure:"host"`
	// Timezone is the IANA zone used for server-assigned timestamps.
	Timezone string `mapstructure:"timezone"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds the static ingestion credential.
type AuthConfig struct {
	// APIKey is the value the sensor must present in the x-api-key
	// header on POST /savedata. Required.
	APIKey string `mapstructure:"api_key"`
}

// Load reads configuration from configPath (JSON, optional), then applies
// GEIGER_* environment overrides on top of the defaults. A missing config
// file is not an error; an unreadable or unparsable one is.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.timezone", "Asia/Tokyo")
	v.SetDefault("database.path", "geigermon.db")
	v.SetDefault("auth.api_key", "")

	v.SetEnvPrefix("GEIGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.json"
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file: run on defaults and environment.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key must be set (config file or GEIGER_AUTH_API_KEY)")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	return nil
}
