package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// The marketplace promo upload contract: five fixed headers at row 1, data
// from row 2. Column E (purchase limit) is always left blank.
var outputHeaders = [5]string{
	"Product_id (wajib)",
	"SKU_id (wajib)",
	"Harga Penawaran (wajib)",
	"Total Stok Promosi (optional)\n1. Total Stok Promosi≤ Stok\n2. Jika tidak diisi artinya tidak terbatas",
	"Batas Pembelian (optional)\n1. 1 ≤ Batas pembelian≤99\n2. Jika tidak diisi artinya tidak terbatas",
}

// FreshWorkbook builds the promo workbook from scratch.
type FreshWorkbook struct {
	Tier pricing.Tier
}

func (b *FreshWorkbook) Build(rows []pricing.OutputRow) (*Artifact, error) {
	data, err := renderPromoWorkbook(rows)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Name:        outputFileName(b.Tier),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

func renderPromoWorkbook(rows []pricing.OutputRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writePromoSheet(f, f.GetSheetName(0), rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writePromoSheet(f *excelize.File, sheet string, rows []pricing.OutputRow) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range outputHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, pricing.OutputHeaderRow)
		if err != nil {
			return fmt.Errorf("failed to get cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, row := range rows {
		r := pricing.OutputDataStartRow + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.ProductID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.SkuID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Price)
		if row.HasStock {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.Stock)
		}
		// column E stays blank: no purchase limit is ever imposed
	}

	for i := range outputHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err == nil {
			f.SetColWidth(sheet, col, col, 22)
		}
	}

	return nil
}
