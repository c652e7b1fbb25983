package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// TemplateOverlay writes data rows into an operator-provided promo template,
// keeping its banner rows, styles and merged ranges untouched.
type TemplateOverlay struct {
	Template []byte
	Tier     pricing.Tier
}

func (b *TemplateOverlay) Build(rows []pricing.OutputRow) (*Artifact, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b.Template))
	if err != nil {
		return nil, fmt.Errorf("failed to open template workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("template workbook has no sheets")
	}

	w, err := newMergeAwareWriter(f, sheet)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		r := pricing.OutputDataStartRow + i
		if err := w.set(1, r, row.ProductID); err != nil {
			return nil, err
		}
		if err := w.set(2, r, row.SkuID); err != nil {
			return nil, err
		}
		if err := w.set(3, r, row.Price); err != nil {
			return nil, err
		}
		if row.HasStock {
			if err := w.set(4, r, row.Stock); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &Artifact{
		Name:        outputFileName(b.Tier),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

type mergeRange struct {
	startCol, startRow int
	endCol, endRow     int
}

// mergeAwareWriter redirects writes that land inside a merged range to the
// range anchor, the way spreadsheet applications edit merged cells. Writing
// to a non-anchor cell of a merged range corrupts some readers.
type mergeAwareWriter struct {
	f      *excelize.File
	sheet  string
	merged []mergeRange
}

func newMergeAwareWriter(f *excelize.File, sheet string) (*mergeAwareWriter, error) {
	cells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect merged cells: %w", err)
	}

	w := &mergeAwareWriter{f: f, sheet: sheet}
	for _, m := range cells {
		sc, sr, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		ec, er, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		w.merged = append(w.merged, mergeRange{startCol: sc, startRow: sr, endCol: ec, endRow: er})
	}
	return w, nil
}

func (w *mergeAwareWriter) set(col, row int, value interface{}) error {
	for _, m := range w.merged {
		if col >= m.startCol && col <= m.endCol && row >= m.startRow && row <= m.endRow {
			col, row = m.startCol, m.startRow
			break
		}
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to get cell name: %w", err)
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	return nil
}
