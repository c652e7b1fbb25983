// Package export renders batch results into the artifacts operators download:
// the marketplace promo workbook in its four output shapes, and the issue
// list in tabular form.
package export

import (
	"fmt"

	"pricegen/pricing"
)

// Mode selects the output shape for a run. The pricing pass is identical for
// all of them; only the rendering differs.
type Mode string

const (
	// ModeFresh builds the promo workbook from scratch.
	ModeFresh Mode = "fresh"
	// ModeTemplate overlays data rows onto an uploaded promo template.
	ModeTemplate Mode = "template"
	// ModeInPlace rewrites the price column of the uploaded input workbook.
	ModeInPlace Mode = "inplace"
	// ModeChunked splits the promo workbook into row-capped parts in a zip.
	ModeChunked Mode = "chunked"
)

// ParseMode validates an operator-supplied output mode; empty selects fresh.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeFresh, nil
	case ModeFresh, ModeTemplate, ModeInPlace, ModeChunked:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown output mode %q", s)
}

// Artifact is a rendered download: the payload plus the filename and content
// type the transport should present.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	zipContentType  = "application/zip"
	csvContentType  = "text/csv"
	jsonContentType = "application/json"
)

// Builder renders an ordered OutputRow stream into one artifact.
type Builder interface {
	Build(rows []pricing.OutputRow) (*Artifact, error)
}

func outputFileName(tier pricing.Tier) string {
	return fmt.Sprintf("product_discount_output_%s.xlsx", tier)
}
