package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// InPlaceUpdate returns the uploaded input workbook with resolved prices
// written back into its own price column. Rows with issues keep their old
// price, so the workbook stays usable as a mass-update upload.
type InPlaceUpdate struct {
	Source []byte
	Layout *pricing.InputLayout
	Tier   pricing.Tier
}

func (b *InPlaceUpdate) Build(rows []pricing.OutputRow) (*Artifact, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b.Source))
	if err != nil {
		return nil, fmt.Errorf("failed to open input workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("input workbook has no sheets")
	}

	w, err := newMergeAwareWriter(f, sheet)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err := w.set(b.Layout.PriceCol, row.Row, row.Price); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &Artifact{
		Name:        fmt.Sprintf("product_discount_inplace_%s.xlsx", b.Tier),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}
