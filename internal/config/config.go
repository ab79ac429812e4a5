package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Endpoints EndpointsConfig
	HTTP      HTTPConfig
	Log       LogConfig
}

// EndpointsConfig holds the upstream service URLs
type EndpointsConfig struct {
	Geocoding string
	Nominatim string
	Forecast  string
}

// HTTPConfig holds transport tuning shared by every outbound request
type HTTPConfig struct {
	ConnectTimeout    time.Duration
	ReadTimeout       time.Duration
	MaxRetries        int
	RetryWaitMin      time.Duration
	UserAgent         string
	NominatimInterval time.Duration // minimum spacing between Nominatim calls
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.wetter")

	// Set defaults
	v.SetDefault("endpoints.geocoding", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("endpoints.nominatim", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("endpoints.forecast", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("http.connectTimeout", 5*time.Second)
	v.SetDefault("http.readTimeout", 15*time.Second)
	v.SetDefault("http.maxRetries", 3)
	v.SetDefault("http.retryWaitMin", 500*time.Millisecond)
	v.SetDefault("http.userAgent", "wetter-cli/1.0")
	v.SetDefault("http.nominatimInterval", time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	// Read from environment variables
	v.SetEnvPrefix("WETTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// NewLogger creates a new slog.Logger based on the configuration. It
// writes to stderr so forecast output on stdout stays clean.
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
