package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// StoreConfig holds the PostgREST data API configuration
type StoreConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// SchedulerConfig holds the periodic snapshot recompute configuration
type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Cron is a standard 5-field cron expression; the default fires at
	// 02:00 on the first day of each month.
	Cron string `mapstructure:"cron"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.cron", "0 2 1 * *")

	// Read from environment variables
	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("store.url", "STORE_URL")
	v.BindEnv("store.service_key", "STORE_SERVICE_KEY")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Store.URL == "" {
		return fmt.Errorf("STORE_URL is required")
	}
	if c.Store.ServiceKey == "" {
		return fmt.Errorf("STORE_SERVICE_KEY is required")
	}
	return nil
}
