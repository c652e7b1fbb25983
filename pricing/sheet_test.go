package pricing

// fakeSheet is an in-memory Sheet for loader and driver tests, row-major with
// 1-based addressing like the real workbook adapter.
type fakeSheet struct {
	rows [][]CellValue
}

func sheetOf(rows ...[]CellValue) *fakeSheet {
	return &fakeSheet{rows: rows}
}

func (s *fakeSheet) Cell(row, col int) CellValue {
	if row < 1 || row > len(s.rows) {
		return AbsentCell()
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return AbsentCell()
	}
	return r[col-1]
}

func (s *fakeSheet) MaxRow() int { return len(s.rows) }

func (s *fakeSheet) MaxCol() int {
	max := 0
	for _, r := range s.rows {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// textRow builds a row of text cells; empty strings become absent cells.
func textRow(vals ...string) []CellValue {
	row := make([]CellValue, len(vals))
	for i, v := range vals {
		if v == "" {
			row[i] = AbsentCell()
		} else {
			row[i] = TextCell(v)
		}
	}
	return row
}

// emptyRow builds a row of absent cells.
func emptyRow(width int) []CellValue {
	return make([]CellValue, width)
}
