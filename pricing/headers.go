package pricing

import (
	"fmt"
	"strings"
)

// Field names one logical column a loader requires, with the header spellings
// accepted for it. Name is what failure messages show the operator.
type Field struct {
	Name     string
	Synonyms []string
}

// RowRange is an inclusive window of rows to scan for a header row.
// Fixed-layout callers pass a single-row range.
type RowRange struct {
	First, Last int
}

// SingleRow returns the range covering exactly one row.
func SingleRow(row int) RowRange { return RowRange{First: row, Last: row} }

// ColumnMap maps a Field.Name to its 1-based column index.
type ColumnMap map[string]int

// MissingColumnsError reports that no row in the searched range carried a
// synonym for every required field. Missing lists the unmatched field names of
// the closest candidate row.
type MissingColumnsError struct {
	Missing []string
	Rows    RowRange
}

func (e *MissingColumnsError) Error() string {
	cols := strings.Join(e.Missing, ", ")
	if e.Rows.First == e.Rows.Last {
		return fmt.Sprintf("header row %d is missing required columns: %s", e.Rows.First, cols)
	}
	return fmt.Sprintf("no header row found in rows %d-%d, missing required columns: %s",
		e.Rows.First, e.Rows.Last, cols)
}

// ResolveColumns locates the header row for the given fields. Each candidate
// row is read as a trimmed, lowercased header-text to column map, first
// occurrence winning on duplicate header text; the first row where every field
// matches one of its synonyms is returned together with the resolved columns.
// Uploads vary wildly in header spelling, which is why matching goes through
// synonym lists instead of exact labels.
func ResolveColumns(sheet Sheet, rows RowRange, fields []Field) (ColumnMap, int, error) {
	var bestMissing []string
	for r := rows.First; r <= rows.Last; r++ {
		headers := headerMap(sheet, r)

		cols := make(ColumnMap, len(fields))
		var missing []string
		for _, f := range fields {
			col, found := matchField(headers, f)
			if !found {
				missing = append(missing, f.Name)
				continue
			}
			cols[f.Name] = col
		}
		if len(missing) == 0 {
			return cols, r, nil
		}
		if bestMissing == nil || len(missing) < len(bestMissing) {
			bestMissing = missing
		}
	}

	if bestMissing == nil {
		for _, f := range fields {
			bestMissing = append(bestMissing, f.Name)
		}
	}
	return nil, 0, &MissingColumnsError{Missing: bestMissing, Rows: rows}
}

// headerMap reads one row as canonical header text mapped to column index.
func headerMap(sheet Sheet, row int) map[string]int {
	m := make(map[string]int)
	for c := 1; c <= sheet.MaxCol(); c++ {
		h := strings.ToLower(NormalizeIdentifier(sheet.Cell(row, c)))
		if h == "" {
			continue
		}
		if _, seen := m[h]; !seen {
			m[h] = c
		}
	}
	return m
}

func matchField(headers map[string]int, f Field) (int, bool) {
	for _, syn := range f.Synonyms {
		if col, ok := headers[strings.ToLower(strings.TrimSpace(syn))]; ok {
			return col, true
		}
	}
	return 0, false
}
