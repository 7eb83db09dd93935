package config

import (
	"os"
	"strings"
	"time"

	"cancerdash/internal/errors"
)

// DefaultCancerColumn is the column preselected in the cancer-type dropdown.
const DefaultCancerColumn = "Breast_cancer_deaths_per_100_000_women"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// DataConfig holds the dataset location
type DataConfig struct {
	File string
}

// DashboardConfig holds selector defaults and the optional explicit list of
// mortality-rate columns. An empty CancerColumns means columns are
// discovered by name.
type DashboardConfig struct {
	DefaultCancer string
	CancerColumns []string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Dashboard: *loadDashboardConfig(),
		Log:       LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Server.Port, ":") {
		return c.Server.Port
	}
	return ":" + c.Server.Port
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8050"),
		GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File: getEnvOrDefault("DATA_FILE", "data/WHO_Asia_Cancer_with_Regions.csv"),
	}
}

func loadDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		DefaultCancer: getEnvOrDefault("DEFAULT_CANCER", DefaultCancerColumn),
		CancerColumns: getEnvListOrDefault("CANCER_COLUMNS", nil),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return errors.ConfigInvalid("SHUTDOWN_TIMEOUT must be positive")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be one of debug, release, test")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
