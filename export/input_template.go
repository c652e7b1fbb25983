package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// The mass-update input shape: title row, headers at row 3, example rows at
// 4-5, operator data from row 6.
var inputTemplateHeaders = []string{
	pricing.FieldProductID,
	pricing.FieldSkuID,
	"Nama Produk",
	"Varian",
	pricing.FieldSellerSku,
	pricing.FieldPrice,
	pricing.FieldStock,
}

var inputTemplateExamples = [2][]interface{}{
	{"Contoh: 123456", "Contoh: 654321", "Contoh: Meja Lipat", "Contoh: Hitam", "Contoh: MJL01+PC", "Contoh: 150000", "Contoh: 25"},
	{"Contoh: 123457", "Contoh: 654322", "Contoh: Kursi Gaming", "", "Contoh: KRG02", "Contoh: 2750000", ""},
}

// InputTemplate renders the empty mass-update workbook operators fill in.
func InputTemplate() (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Template Update Massal Produk")

	for i, header := range inputTemplateHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, pricing.InputHeaderRow)
		if err != nil {
			return nil, fmt.Errorf("failed to get cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowOffset, example := range inputTemplateExamples {
		for i, value := range example {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, pricing.InputHeaderRow+1+rowOffset)
			if err != nil {
				return nil, fmt.Errorf("failed to get cell name: %w", err)
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	for i := range inputTemplateHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err == nil {
			f.SetColWidth(sheet, col, col, 24)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &Artifact{
		Name:        "template_input_diskon.xlsx",
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}
