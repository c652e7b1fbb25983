// Package services implements the pricing pipeline behind the HTTP handlers.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pricegen/export"
	"pricegen/importer"
	"pricegen/pricing"
	apperrors "pricegen/server/errors"
	"pricegen/server/middleware"
)

// DiscountService runs the pricing pipeline over uploaded workbooks. It is
// stateless: every run parses its own inputs and renders its own artifacts.
type DiscountService struct {
	cfg pricing.Config
}

// NewDiscountService creates the service with the given spreadsheet layout
// and rescale configuration.
func NewDiscountService(cfg pricing.Config) *DiscountService {
	return &DiscountService{cfg: cfg}
}

// RunRequest carries the three uploads and the pricing knobs of one run.
type RunRequest struct {
	Input     []byte
	Pricelist []byte
	Addons    []byte
	Tier      pricing.Tier
	Discount  int64
}

// RunResult is the outcome of one pricing pass.
type RunResult struct {
	Tier          pricing.Tier
	Discount      int64
	Layout        *pricing.InputLayout
	Batch         *pricing.BatchResult
	PricelistSkus int
	AddonCodes    int
	Elapsed       time.Duration
}

// Run parses the three workbooks, resolves every data row and returns the
// batch result. Parse failures come back as AppErrors with the exact file
// that caused them.
func (s *DiscountService) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	start := time.Now()
	reqID := middleware.GetRequestID(ctx)

	pricelist, err := s.loadPricelist(req.Pricelist)
	if err != nil {
		return nil, err
	}

	addons, err := s.loadAddons(req.Addons)
	if err != nil {
		return nil, err
	}

	sheet, layout, err := s.loadInput(req.Input)
	if err != nil {
		return nil, err
	}

	resolver := &pricing.Resolver{
		Pricelist: pricelist,
		Addons:    addons,
		Tier:      req.Tier,
		Discount:  req.Discount,
	}
	batch := pricing.RunBatch(sheet, layout, resolver)

	elapsed := time.Since(start)
	slog.Info("Pricing run completed",
		"tier", req.Tier,
		"discount", req.Discount,
		"rows_scanned", batch.RowsScanned,
		"rows_priced", len(batch.Outputs),
		"rows_with_issues", len(batch.Issues),
		"pricelist_skus", len(pricelist),
		"addon_codes", len(addons),
		"elapsed_ms", elapsed.Milliseconds(),
		"request_id", reqID,
	)

	return &RunResult{
		Tier:          req.Tier,
		Discount:      req.Discount,
		Layout:        layout,
		Batch:         batch,
		PricelistSkus: len(pricelist),
		AddonCodes:    len(addons),
		Elapsed:       elapsed,
	}, nil
}

func (s *DiscountService) loadPricelist(data []byte) (pricing.Pricelist, error) {
	sheet, err := firstSheet(data, "Pricelist")
	if err != nil {
		return nil, err
	}

	pricelist, err := pricing.LoadPricelist(sheet, s.cfg)
	if err != nil {
		return nil, headerError("Gagal baca Pricelist", err)
	}
	return pricelist, nil
}

func (s *DiscountService) loadAddons(data []byte) (pricing.AddonTable, error) {
	sheet, err := firstSheet(data, "Addon Mapping")
	if err != nil {
		return nil, err
	}

	addons, err := pricing.LoadAddonTable(sheet, s.cfg)
	if err != nil {
		return nil, headerError("Gagal baca Addon Mapping", err)
	}
	return addons, nil
}

func (s *DiscountService) loadInput(data []byte) (pricing.Sheet, *pricing.InputLayout, error) {
	sheet, err := firstSheet(data, "Input")
	if err != nil {
		return nil, nil, err
	}

	layout, err := pricing.ResolveInputLayout(sheet, s.cfg)
	if err != nil {
		return nil, nil, headerError("Gagal baca file Input", err)
	}
	return sheet, layout, nil
}

// firstSheet opens a workbook upload and returns its first sheet. The role
// names which of the three uploads failed.
func firstSheet(data []byte, role string) (pricing.Sheet, error) {
	wb, err := importer.OpenWorkbook(data)
	if err != nil {
		return nil, apperrors.NewValidationError(
			"File "+role+" bukan file Excel (.xlsx) yang valid", err)
	}
	defer wb.Close()

	sheet, err := wb.FirstSheet()
	if err != nil {
		return nil, apperrors.NewValidationError(
			"File "+role+" tidak punya sheet yang bisa dibaca", err)
	}
	return sheet, nil
}

// headerError maps a missing-columns failure to 422 with the resolver's own
// description; anything else stays an internal error.
func headerError(prefix string, err error) error {
	var missing *pricing.MissingColumnsError
	if errors.As(err, &missing) {
		return apperrors.NewUnprocessableError(prefix+": "+missing.Error(), err)
	}
	return apperrors.NewInternalError(prefix, err)
}

// BuildOutput renders the promo workbook artifact for a finished run.
func (s *DiscountService) BuildOutput(ctx context.Context, req *RunRequest, mode export.Mode, chunkSize int, template []byte) (*export.Artifact, error) {
	result, err := s.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	builder, err := s.builderFor(result, req, mode, chunkSize, template)
	if err != nil {
		return nil, err
	}

	artifact, err := builder.Build(result.Batch.Outputs)
	if err != nil {
		return nil, apperrors.NewInternalError("Gagal render file output", err)
	}

	slog.Info("Output artifact rendered",
		"mode", mode,
		"artifact", artifact.Name,
		"size_bytes", len(artifact.Data),
		"request_id", middleware.GetRequestID(ctx),
	)
	return artifact, nil
}

func (s *DiscountService) builderFor(result *RunResult, req *RunRequest, mode export.Mode, chunkSize int, template []byte) (export.Builder, error) {
	switch mode {
	case export.ModeFresh:
		return &export.FreshWorkbook{Tier: result.Tier}, nil
	case export.ModeTemplate:
		if len(template) == 0 {
			return nil, apperrors.NewValidationError(
				"Mode template butuh file template output", nil)
		}
		return &export.TemplateOverlay{Template: template, Tier: result.Tier}, nil
	case export.ModeInPlace:
		return &export.InPlaceUpdate{Source: req.Input, Layout: result.Layout, Tier: result.Tier}, nil
	case export.ModeChunked:
		return &export.ChunkedWorkbooks{Tier: result.Tier, ChunkSize: chunkSize}, nil
	}
	return nil, apperrors.NewValidationError("Mode output tidak dikenal", nil)
}

// BuildIssues renders the issue-list artifact for a finished run.
func (s *DiscountService) BuildIssues(ctx context.Context, req *RunRequest, format export.IssueFormat) (*export.Artifact, error) {
	result, err := s.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	artifact, err := export.RenderIssues(result.Batch.Issues, format)
	if err != nil {
		return nil, apperrors.NewInternalError("Gagal render daftar issue", err)
	}
	return artifact, nil
}
