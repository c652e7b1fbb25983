package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pricegen/pricing"
)

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("log level must be one of %v, got %s", validLogLevels, c.LogLevel))
		}
	}

	if c.MaxUploadSizeMB < 1 {
		errors = append(errors, "max upload size must be at least 1 MB")
	}

	if c.RateLimitRPS <= 0 {
		errors = append(errors, "rate limit must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}
	if c.MaxConcurrentConnections < 1 {
		errors = append(errors, "max concurrent connections must be at least 1")
	}

	if c.ShutdownTimeout < time.Second {
		errors = append(errors, "shutdown timeout must be at least 1 second")
	}

	if _, err := pricing.ParseTier(c.DefaultTier); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default tier: %v", err))
	}

	if c.PreviewRowLimit < 1 {
		errors = append(errors, "preview row limit must be at least 1")
	}
	if c.DefaultChunkSize < 1 {
		errors = append(errors, "default chunk size must be at least 1")
	}
	if c.RescaleThreshold < 1 {
		errors = append(errors, "rescale threshold must be at least 1")
	}
	if c.RescaleMultiplier < 1 {
		errors = append(errors, "rescale multiplier must be at least 1")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}
