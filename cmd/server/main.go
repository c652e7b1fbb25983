// @title Product Discount Pricing API
// @version 1.0
// @description Spreadsheet pricing pipeline: prices marketplace mass-update workbooks against a distributor pricelist and addon mapping, and renders promo uploads.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8880
// @BasePath /api/v1
// @schemes http https

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pricegen/internal/config"
	"pricegen/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	server.ConfigureLogLevel(cfg.LogLevel)

	srv := server.NewServer(cfg)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("server panicked during startup", "panic", r)
				os.Exit(1)
			}
		}()
		if err := srv.Start(); err != nil {
			slog.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutdown signal received, stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown did not finish cleanly", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
