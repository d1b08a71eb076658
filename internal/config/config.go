// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Loaded once at
// process start and treated as immutable afterwards.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Server  ServerConfig
	YouTube YouTubeConfig
	Filters FiltersConfig
	Logging LoggingConfig
	CORS    CORSConfig
}

// ServerConfig contains HTTP server configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ServerConfig struct {
	Environment     string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// YouTubeConfig contains the upstream Data API credential and search setup.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type YouTubeConfig struct {
	APIKey            string
	SearchQuery       string
	MaxResultsPerPage int64
}

// FiltersConfig contains the default values applied when a request omits a
// filter parameter.
type FiltersConfig struct {
	MaxResults     int
	MaxDuration    int
	MinSubscribers int64
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
}

// CORSConfig contains cross-origin settings for the public endpoint.
type CORSConfig struct {
	AllowedOrigins []string
}

// IsProduction reports whether the server runs in production mode. Error
// responses include stack traces only when this is false.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load loads configuration from file and environment variables. The YouTube
// API key has no default and must be supplied; everything else falls back to
// a sensible default.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read environment variables, e.g. APP_YOUTUBE_APIKEY, APP_SERVER_PORT
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.YouTube.APIKey == "" {
		return nil, errors.New("youtube.apikey is required (APP_YOUTUBE_APIKEY)")
	}

	return &cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.readtimeout", 15*time.Second)
	viper.SetDefault("server.writetimeout", 15*time.Second)
	viper.SetDefault("server.idletimeout", 60*time.Second)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)

	// YouTube
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.searchquery", "AI tools")
	viper.SetDefault("youtube.maxresultsperpage", 50)

	// Filters
	viper.SetDefault("filters.maxresults", 10)
	viper.SetDefault("filters.maxduration", 1200)
	viper.SetDefault("filters.minsubscribers", 1000)

	// Logging
	viper.SetDefault("logging.level", "info")

	// CORS
	viper.SetDefault("cors.allowedorigins", []string{"*"})
}
