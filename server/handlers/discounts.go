package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pricegen/export"
	"pricegen/pricing"
	apperrors "pricegen/server/errors"
	"pricegen/server/services"
)

// DiscountHandler serves the pricing pipeline endpoints.
type DiscountHandler struct {
	service          *services.DiscountService
	defaultTier      pricing.Tier
	maxUploadBytes   int64
	previewRowLimit  int
	defaultChunkSize int
}

// NewDiscountHandler creates the handler with the server's defaults.
func NewDiscountHandler(
	service *services.DiscountService,
	defaultTier pricing.Tier,
	maxUploadBytes int64,
	previewRowLimit int,
	defaultChunkSize int,
) *DiscountHandler {
	return &DiscountHandler{
		service:          service,
		defaultTier:      defaultTier,
		maxUploadBytes:   maxUploadBytes,
		previewRowLimit:  previewRowLimit,
		defaultChunkSize: defaultChunkSize,
	}
}

// PreviewRow is one priced row in the report preview.
type PreviewRow struct {
	Row       int    `json:"row"`
	ProductID string `json:"product_id"`
	SkuID     string `json:"sku_id"`
	Price     int64  `json:"price"`
	PriceFmt  string `json:"price_fmt"`
	Stock     *int64 `json:"stock,omitempty"`
}

// IssueRow is one unresolvable row in the report.
type IssueRow struct {
	Row       int    `json:"row"`
	ProductID string `json:"product_id"`
	SkuID     string `json:"sku_id"`
	SellerSku string `json:"sku_penjual"`
	OldPrice  int64  `json:"harga_lama"`
	Category  string `json:"kategori"`
	Reason    string `json:"alasan"`
}

// ReportResponse summarises one pricing run.
type ReportResponse struct {
	Tier             string       `json:"tier"`
	Discount         int64        `json:"discount"`
	RowsScanned      int          `json:"rows_scanned"`
	RowsSkipped      int          `json:"rows_skipped"`
	RowsPriced       int          `json:"rows_priced"`
	RowsWithIssues   int          `json:"rows_with_issues"`
	PricelistSkus    int          `json:"pricelist_skus"`
	AddonCodes       int          `json:"addon_codes"`
	Preview          []PreviewRow `json:"preview"`
	PreviewTruncated bool         `json:"preview_truncated"`
	Issues           []IssueRow   `json:"issues"`
	IssuesTruncated  bool         `json:"issues_truncated"`
	ElapsedMs        int64        `json:"elapsed_ms"`
}

// parseRunRequest reads the three workbook uploads and the pricing knobs
// shared by every pipeline endpoint.
func (h *DiscountHandler) parseRunRequest(c *gin.Context) (*services.RunRequest, error) {
	input, err := formWorkbook(c, "input", h.maxUploadBytes)
	if err != nil {
		return nil, err
	}
	pricelist, err := formWorkbook(c, "pricelist", h.maxUploadBytes)
	if err != nil {
		return nil, err
	}
	addons, err := formWorkbook(c, "addons", h.maxUploadBytes)
	if err != nil {
		return nil, err
	}

	tier := h.defaultTier
	if raw := c.PostForm("tier"); raw != "" {
		tier, err = pricing.ParseTier(raw)
		if err != nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("Tier %q tidak dikenal (pilih M3 atau M4)", raw), err)
		}
	}

	var discount int64
	if raw := c.PostForm("discount"); raw != "" {
		discount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("Diskon %q bukan angka", raw), err)
		}
		if discount < 0 {
			return nil, apperrors.NewValidationError("Diskon tidak boleh negatif", nil)
		}
	}

	return &services.RunRequest{
		Input:     input,
		Pricelist: pricelist,
		Addons:    addons,
		Tier:      tier,
		Discount:  discount,
	}, nil
}

// HandleDiscountReport runs the pipeline and returns the JSON report.
// @Summary Run the pricing pipeline and return a report
// @Description Prices every input row against the pricelist and addon mapping, returning summary counts, a preview of priced rows and the issue list.
// @Tags discounts
// @Accept multipart/form-data
// @Produce json
// @Param input formData file true "Marketplace mass-update workbook (.xlsx)"
// @Param pricelist formData file true "Distributor pricelist workbook (.xlsx)"
// @Param addons formData file true "Addon mapping workbook (.xlsx)"
// @Param tier formData string false "Price tier, M3 or M4"
// @Param discount formData int false "Flat discount in rupiah"
// @Success 200 {object} ReportResponse "Pricing report"
// @Failure 400 {object} ErrorResponse "Invalid upload or parameters"
// @Failure 422 {object} ErrorResponse "Workbook headers not found"
// @Router /discounts/report [post]
func (h *DiscountHandler) HandleDiscountReport(c *gin.Context) {
	req, err := h.parseRunRequest(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, h.buildReport(result))
}

func (h *DiscountHandler) buildReport(result *services.RunResult) *ReportResponse {
	batch := result.Batch

	preview := make([]PreviewRow, 0, min(len(batch.Outputs), h.previewRowLimit))
	for _, row := range batch.Outputs {
		if len(preview) >= h.previewRowLimit {
			break
		}
		p := PreviewRow{
			Row:       row.Row,
			ProductID: row.ProductID,
			SkuID:     row.SkuID,
			Price:     row.Price,
			PriceFmt:  pricing.FormatRupiah(row.Price),
		}
		if row.HasStock {
			stock := row.Stock
			p.Stock = &stock
		}
		preview = append(preview, p)
	}

	issues := make([]IssueRow, 0, min(len(batch.Issues), h.previewRowLimit))
	for _, issue := range batch.Issues {
		if len(issues) >= h.previewRowLimit {
			break
		}
		issues = append(issues, IssueRow{
			Row:       issue.Row,
			ProductID: issue.ProductID,
			SkuID:     issue.SkuID,
			SellerSku: issue.SellerSku,
			OldPrice:  issue.OldPrice,
			Category:  string(issue.Reason.Kind),
			Reason:    issue.Reason.Message(),
		})
	}

	return &ReportResponse{
		Tier:             string(result.Tier),
		Discount:         result.Discount,
		RowsScanned:      batch.RowsScanned,
		RowsSkipped:      batch.RowsSkipped,
		RowsPriced:       len(batch.Outputs),
		RowsWithIssues:   len(batch.Issues),
		PricelistSkus:    result.PricelistSkus,
		AddonCodes:       result.AddonCodes,
		Preview:          preview,
		PreviewTruncated: len(batch.Outputs) > len(preview),
		Issues:           issues,
		IssuesTruncated:  len(batch.Issues) > len(issues),
		ElapsedMs:        result.Elapsed.Milliseconds(),
	}
}

// HandleDiscountOutput runs the pipeline and streams the promo workbook.
// @Summary Run the pricing pipeline and download the promo workbook
// @Description Prices every input row and renders the marketplace promo upload in the requested output mode.
// @Tags discounts
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param input formData file true "Marketplace mass-update workbook (.xlsx)"
// @Param pricelist formData file true "Distributor pricelist workbook (.xlsx)"
// @Param addons formData file true "Addon mapping workbook (.xlsx)"
// @Param tier formData string false "Price tier, M3 or M4"
// @Param discount formData int false "Flat discount in rupiah"
// @Param mode formData string false "Output mode: fresh, template, inplace or chunked"
// @Param chunk_size formData int false "Rows per part in chunked mode"
// @Param template formData file false "Promo template workbook, required in template mode"
// @Success 200 {file} file "Rendered workbook or zip of parts"
// @Failure 400 {object} ErrorResponse "Invalid upload or parameters"
// @Failure 422 {object} ErrorResponse "Workbook headers not found"
// @Router /discounts/output [post]
func (h *DiscountHandler) HandleDiscountOutput(c *gin.Context) {
	req, err := h.parseRunRequest(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	mode, err := export.ParseMode(c.PostForm("mode"))
	if err != nil {
		HandleError(c, apperrors.NewValidationError(
			"Mode output tidak dikenal (pilih fresh, template, inplace, chunked)", err))
		return
	}

	chunkSize := h.defaultChunkSize
	if raw := c.PostForm("chunk_size"); raw != "" {
		chunkSize, err = strconv.Atoi(raw)
		if err != nil || chunkSize < 1 {
			HandleError(c, apperrors.NewValidationError(
				fmt.Sprintf("chunk_size %q tidak valid", raw), err))
			return
		}
	}

	var template []byte
	if mode == export.ModeTemplate {
		template, err = optionalFormWorkbook(c, "template", h.maxUploadBytes)
		if err != nil {
			HandleError(c, err)
			return
		}
	}

	artifact, err := h.service.BuildOutput(c.Request.Context(), req, mode, chunkSize, template)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendArtifact(c, artifact.ContentType, artifact.Name, artifact.Data)
}

// HandleDiscountIssues runs the pipeline and streams the issue list.
// @Summary Run the pricing pipeline and download the issue list
// @Description Prices every input row and returns only the rows that could not be priced, in CSV, XLSX or JSON.
// @Tags discounts
// @Accept multipart/form-data
// @Produce text/csv
// @Param input formData file true "Marketplace mass-update workbook (.xlsx)"
// @Param pricelist formData file true "Distributor pricelist workbook (.xlsx)"
// @Param addons formData file true "Addon mapping workbook (.xlsx)"
// @Param tier formData string false "Price tier, M3 or M4"
// @Param discount formData int false "Flat discount in rupiah"
// @Param format formData string false "Issue list format: csv, xlsx or json"
// @Success 200 {file} file "Issue list artifact"
// @Failure 400 {object} ErrorResponse "Invalid upload or parameters"
// @Failure 422 {object} ErrorResponse "Workbook headers not found"
// @Router /discounts/issues [post]
func (h *DiscountHandler) HandleDiscountIssues(c *gin.Context) {
	req, err := h.parseRunRequest(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	format, err := export.ParseIssueFormat(c.PostForm("format"))
	if err != nil {
		HandleError(c, apperrors.NewValidationError(
			"Format issue tidak dikenal (pilih csv, xlsx, json)", err))
		return
	}

	artifact, err := h.service.BuildIssues(c.Request.Context(), req, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendArtifact(c, artifact.ContentType, artifact.Name, artifact.Data)
}
