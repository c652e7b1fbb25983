package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pricegen/export"
	"pricegen/pricing"
	"pricegen/server/services"
)

func main() {
	inputPath := flag.String("input", "", "Path to the marketplace mass-update workbook (.xlsx)")
	pricelistPath := flag.String("pricelist", "", "Path to the distributor pricelist workbook (.xlsx)")
	addonPath := flag.String("addons", "", "Path to the addon mapping workbook (.xlsx)")
	tierFlag := flag.String("tier", "M3", "Price tier to read from the pricelist (M3 or M4)")
	discount := flag.Int64("discount", 0, "Flat discount in rupiah subtracted from every priced row")
	modeFlag := flag.String("mode", "fresh", "Output mode: fresh, template, inplace or chunked")
	templatePath := flag.String("template", "", "Promo template workbook, required with -mode=template")
	chunkSize := flag.Int("chunk-size", export.DefaultChunkSize, "Rows per part with -mode=chunked")
	issuesFlag := flag.String("issues", "csv", "Issue list format: csv, xlsx or json")
	outDir := flag.String("out", ".", "Directory the artifacts are written to")
	verbose := flag.Bool("verbose", false, "Log pipeline details")
	flag.Parse()

	if *inputPath == "" || *pricelistPath == "" || *addonPath == "" {
		fmt.Println("Usage: pricegen -input=<file> -pricelist=<file> -addons=<file> [options]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	if !*verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	tier, err := pricing.ParseTier(*tierFlag)
	if err != nil {
		log.Fatalf("invalid -tier: %v", err)
	}
	mode, err := export.ParseMode(*modeFlag)
	if err != nil {
		log.Fatalf("invalid -mode: %v", err)
	}
	format, err := export.ParseIssueFormat(*issuesFlag)
	if err != nil {
		log.Fatalf("invalid -issues: %v", err)
	}
	if *discount < 0 {
		log.Fatalf("invalid -discount: must not be negative")
	}
	if *chunkSize < 1 {
		log.Fatalf("invalid -chunk-size: must be at least 1")
	}

	input, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("failed to read input workbook: %v", err)
	}
	pricelist, err := os.ReadFile(*pricelistPath)
	if err != nil {
		log.Fatalf("failed to read pricelist workbook: %v", err)
	}
	addons, err := os.ReadFile(*addonPath)
	if err != nil {
		log.Fatalf("failed to read addon mapping workbook: %v", err)
	}

	var template []byte
	if mode == export.ModeTemplate {
		if *templatePath == "" {
			log.Fatalf("-mode=template requires -template")
		}
		template, err = os.ReadFile(*templatePath)
		if err != nil {
			log.Fatalf("failed to read template workbook: %v", err)
		}
	}

	svc := services.NewDiscountService(pricing.DefaultConfig())
	req := &services.RunRequest{
		Input:     input,
		Pricelist: pricelist,
		Addons:    addons,
		Tier:      tier,
		Discount:  *discount,
	}

	result, err := svc.Run(context.Background(), req)
	if err != nil {
		log.Fatalf("pricing run failed: %v", err)
	}

	var builder export.Builder
	switch mode {
	case export.ModeFresh:
		builder = &export.FreshWorkbook{Tier: result.Tier}
	case export.ModeTemplate:
		builder = &export.TemplateOverlay{Template: template, Tier: result.Tier}
	case export.ModeInPlace:
		builder = &export.InPlaceUpdate{Source: input, Layout: result.Layout, Tier: result.Tier}
	case export.ModeChunked:
		builder = &export.ChunkedWorkbooks{Tier: result.Tier, ChunkSize: *chunkSize}
	}

	artifact, err := builder.Build(result.Batch.Outputs)
	if err != nil {
		log.Fatalf("failed to render output workbook: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	outPath, err := writeArtifact(*outDir, artifact)
	if err != nil {
		log.Fatalf("failed to write output workbook: %v", err)
	}

	issuesPath := ""
	if len(result.Batch.Issues) > 0 {
		issuesArtifact, err := export.RenderIssues(result.Batch.Issues, format)
		if err != nil {
			log.Fatalf("failed to render issue list: %v", err)
		}
		issuesPath, err = writeArtifact(*outDir, issuesArtifact)
		if err != nil {
			log.Fatalf("failed to write issue list: %v", err)
		}
	}

	fmt.Println("\n--- Product Discount Pricing ---")
	fmt.Printf("Tier: %s\n", result.Tier)
	fmt.Printf("Discount: %s\n", pricing.FormatRupiah(result.Discount))
	fmt.Printf("Rows scanned: %d\n", result.Batch.RowsScanned)
	fmt.Printf("Rows skipped (blank): %d\n", result.Batch.RowsSkipped)
	fmt.Printf("Rows priced: %d\n", len(result.Batch.Outputs))
	fmt.Printf("Rows with issues: %d\n", len(result.Batch.Issues))
	fmt.Printf("Pricelist SKUs: %d\n", result.PricelistSkus)
	fmt.Printf("Addon codes: %d\n", result.AddonCodes)
	fmt.Printf("Output: %s\n", outPath)
	if issuesPath != "" {
		fmt.Printf("Issues: %s\n", issuesPath)
	} else {
		fmt.Println("Issues: none")
	}
	fmt.Printf("Duration: %s\n", result.Elapsed.Round(time.Millisecond))
}

func writeArtifact(dir string, artifact *export.Artifact) (string, error) {
	path := filepath.Join(dir, artifact.Name)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
