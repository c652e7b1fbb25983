// Package importer decodes XLSX workbooks into the typed cell sheets the
// pricing pipeline consumes.
package importer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// Workbook wraps a decoded XLSX file.
type Workbook struct {
	file *excelize.File
}

// OpenWorkbook decodes an in-memory XLSX document, typically a fresh upload.
func OpenWorkbook(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Workbook{file: f}, nil
}

// OpenWorkbookFile decodes an XLSX file on disk.
func OpenWorkbookFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{file: f}, nil
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// File exposes the underlying document for writers that mutate the workbook
// in place.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// FirstSheet decodes the first sheet, which is where every upstream file keeps
// its data.
func (w *Workbook) FirstSheet() (*SheetData, error) {
	name := w.file.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return w.Sheet(name)
}

// Sheet decodes one sheet into typed cells.
func (w *Workbook) Sheet(name string) (*SheetData, error) {
	rows, err := w.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	data := &SheetData{name: name, rows: make([][]pricing.CellValue, len(rows))}
	for r, row := range rows {
		cells := make([]pricing.CellValue, len(row))
		for c, raw := range row {
			cells[c] = w.classifyCell(name, r+1, c+1, raw)
		}
		data.rows[r] = cells
		if len(cells) > data.maxCol {
			data.maxCol = len(cells)
		}
	}
	return data, nil
}

// classifyCell turns one raw stored value into the pricing cell union. String
// storage stays text; everything else (number, date, bool, formula results)
// classifies by whether its stored value reads as a number, which keeps
// "123,5"-style text distinct from true numeric storage.
func (w *Workbook) classifyCell(sheet string, row, col int, raw string) pricing.CellValue {
	if raw == "" {
		return pricing.AbsentCell()
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return pricing.TextCell(raw)
	}
	cellType, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		return pricing.TextCell(raw)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return pricing.TextCell(raw)
	case excelize.CellTypeBool:
		if raw == "1" {
			return pricing.NumberCell(1)
		}
		return pricing.NumberCell(0)
	case excelize.CellTypeError:
		return pricing.TextCell(raw)
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return pricing.NumberCell(f)
	}
	return pricing.TextCell(raw)
}

// SheetData is the typed-cell snapshot of one sheet. It implements
// pricing.Sheet with 1-based addressing; cells outside the used range are
// absent.
type SheetData struct {
	name   string
	rows   [][]pricing.CellValue
	maxCol int
}

// Name returns the sheet name.
func (s *SheetData) Name() string {
	return s.name
}

// Cell returns the value at the 1-based row and column.
func (s *SheetData) Cell(row, col int) pricing.CellValue {
	if row < 1 || row > len(s.rows) {
		return pricing.AbsentCell()
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return pricing.AbsentCell()
	}
	return r[col-1]
}

// MaxRow returns the number of used rows.
func (s *SheetData) MaxRow() int {
	return len(s.rows)
}

// MaxCol returns the widest used row.
func (s *SheetData) MaxCol() int {
	return s.maxCol
}
