package main

import (
	"fmt"
	"os"

	"pricegen/internal/config"
)

func main() {
	fmt.Println("=== Configuration check ===")
	fmt.Println("")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration loaded")
	fmt.Println("")

	fmt.Println("Server:")
	fmt.Printf("  Port: %s\n", cfg.Port)
	fmt.Printf("  Log Level: %s\n", cfg.LogLevel)
	fmt.Printf("  Shutdown Timeout: %v\n", cfg.ShutdownTimeout)
	fmt.Printf("  Max Concurrent Connections: %d\n", cfg.MaxConcurrentConnections)
	fmt.Println("")

	fmt.Println("Uploads:")
	fmt.Printf("  Max Upload Size: %d MB\n", cfg.MaxUploadSizeMB)
	fmt.Printf("  Rate Limit: %.1f req/s (burst %d)\n", cfg.RateLimitRPS, cfg.RateLimitBurst)
	fmt.Println("")

	fmt.Println("Pipeline:")
	fmt.Printf("  Default Tier: %s\n", cfg.DefaultTier)
	fmt.Printf("  Preview Row Limit: %d\n", cfg.PreviewRowLimit)
	fmt.Printf("  Default Chunk Size: %d\n", cfg.DefaultChunkSize)
	fmt.Printf("  Rescale Threshold: %d\n", cfg.RescaleThreshold)
	fmt.Printf("  Rescale Multiplier: %d\n", cfg.RescaleMultiplier)
	fmt.Println("")

	fmt.Println("=== Check finished ===")
}
