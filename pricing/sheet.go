package pricing

// Sheet is the read surface the pipeline needs from a decoded workbook sheet.
// Rows and columns are 1-based, matching spreadsheet conventions; cells outside
// the used range are absent. Implementations live at the I/O boundary (the
// importer package) and in test fixtures.
type Sheet interface {
	Cell(row, col int) CellValue
	MaxRow() int
	MaxCol() int
}
