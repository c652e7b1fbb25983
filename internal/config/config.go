// Package config loads server settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"pricegen/pricing"
)

// Config holds the runtime settings of the pricing server.
type Config struct {
	// Server
	Port string `json:"port"`

	// Logging
	LogLevel string `json:"log_level"`

	// Upload limits
	MaxUploadSizeMB int `json:"max_upload_size_mb"`

	// Traffic shaping
	RateLimitRPS             float64 `json:"rate_limit_rps"`
	RateLimitBurst           int     `json:"rate_limit_burst"`
	MaxConcurrentConnections int     `json:"max_concurrent_connections"`

	// Shutdown
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Pricing defaults
	DefaultTier       string `json:"default_tier"`
	PreviewRowLimit   int    `json:"preview_row_limit"`
	DefaultChunkSize  int    `json:"default_chunk_size"`
	RescaleThreshold  int64  `json:"rescale_threshold"`
	RescaleMultiplier int64  `json:"rescale_multiplier"`
}

// LoadConfig reads the configuration from environment variables with
// defaults for every knob.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port: getEnv("PORT", "8880"),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 32),

		RateLimitRPS:             getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:           getEnvInt("RATE_LIMIT_BURST", 20),
		MaxConcurrentConnections: getEnvInt("MAX_CONCURRENT_CONNECTIONS", 256),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		DefaultTier:       getEnv("DEFAULT_TIER", "M3"),
		PreviewRowLimit:   getEnvInt("PREVIEW_ROW_LIMIT", 50),
		DefaultChunkSize:  getEnvInt("DEFAULT_CHUNK_SIZE", 500),
		RescaleThreshold:  getEnvInt64("PRICING_RESCALE_THRESHOLD", pricing.DefaultRescaleThreshold),
		RescaleMultiplier: getEnvInt64("PRICING_RESCALE_MULTIPLIER", pricing.DefaultRescaleMultiplier),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// PricingConfig builds the spreadsheet-layout configuration with the
// rescale knobs applied on top of the standard layout.
func (c *Config) PricingConfig() pricing.Config {
	cfg := pricing.DefaultConfig()
	cfg.Rescaler = pricing.Rescaler{
		Threshold:  c.RescaleThreshold,
		Multiplier: c.RescaleMultiplier,
	}
	return cfg
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
