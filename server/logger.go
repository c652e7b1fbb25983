package server

import (
	"log/slog"
	"os"
	"strings"
)

var logLevel = new(slog.LevelVar)

func init() {
	// JSON logs with source locations, level adjustable at runtime
	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}

// ConfigureLogLevel applies the configured level to the global logger.
// Unknown values fall back to INFO.
func ConfigureLogLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}
}
