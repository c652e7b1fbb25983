// Package pricing implements the offer-price pipeline: decoding loosely
// structured pricelist and add-on workbooks into lookup tables, decomposing
// composite seller SKUs, and resolving a final price per listing row with
// deterministic per-row failure reporting.
package pricing

// cellKind discriminates the three states a decoded cell can be in.
type cellKind int

const (
	cellAbsent cellKind = iota
	cellNumber
	cellText
)

// CellValue is the decoded value of a single spreadsheet cell: absent, numeric
// storage, or string storage. Exactly one state holds. Values are built at the
// workbook-decoding boundary and pattern-matched here instead of passing raw
// interface{} cells around.
type CellValue struct {
	kind cellKind
	num  float64
	text string
}

// AbsentCell returns the empty cell value.
func AbsentCell() CellValue { return CellValue{} }

// NumberCell returns a cell holding numeric storage.
func NumberCell(f float64) CellValue { return CellValue{kind: cellNumber, num: f} }

// TextCell returns a cell holding string storage.
func TextCell(s string) CellValue { return CellValue{kind: cellText, text: s} }

// IsAbsent reports whether the cell held no value.
func (v CellValue) IsAbsent() bool { return v.kind == cellAbsent }

// IsNumber reports whether the cell held numeric storage.
func (v CellValue) IsNumber() bool { return v.kind == cellNumber }

// IsText reports whether the cell held string storage.
func (v CellValue) IsText() bool { return v.kind == cellText }

// Number returns the numeric payload; zero unless IsNumber.
func (v CellValue) Number() float64 { return v.num }

// Text returns the string payload; empty unless IsText.
func (v CellValue) Text() string { return v.text }
