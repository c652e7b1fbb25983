package pricing

import (
	"strings"
	"testing"
)

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		cell CellValue
		want string
	}{
		{
			name: "absent cell",
			cell: AbsentCell(),
			want: "",
		},
		{
			name: "integral number",
			cell: NumberCell(123456),
			want: "123456",
		},
		{
			name: "integral float keeps no decimal point",
			cell: NumberCell(2.0),
			want: "2",
		},
		{
			name: "large product id stored as float",
			cell: NumberCell(8991230000),
			want: "8991230000",
		},
		{
			name: "fractional number",
			cell: NumberCell(2.5),
			want: "2.5",
		},
		{
			name: "negative integral number",
			cell: NumberCell(-5),
			want: "-5",
		},
		{
			name: "text with surrounding spaces",
			cell: TextCell("  ABC-01  "),
			want: "ABC-01",
		},
		{
			name: "numeric-looking text keeps leading zeros",
			cell: TextCell("000123"),
			want: "000123",
		},
		{
			name: "blank text",
			cell: TextCell("   "),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeIdentifier(tt.cell)
			if got != tt.want {
				t.Errorf("NormalizeIdentifier(%v) = %q, want %q", tt.cell, got, tt.want)
			}
			if strings.ContainsAny(got, "eE") && !strings.ContainsAny(tt.want, "eE") {
				t.Errorf("NormalizeIdentifier(%v) = %q leaked exponent notation", tt.cell, got)
			}
		})
	}
}

// Identifiers round-trip: feeding a normalized identifier back in as text
// returns it unchanged.
func TestNormalizeIdentifierFixedPoint(t *testing.T) {
	cells := []CellValue{
		AbsentCell(),
		NumberCell(8991230000),
		NumberCell(2.5),
		TextCell("  ABC+PC  "),
		TextCell("000123"),
	}
	for _, cell := range cells {
		once := NormalizeIdentifier(cell)
		twice := NormalizeIdentifier(TextCell(once))
		if once != twice {
			t.Errorf("NormalizeIdentifier not a fixed point: %q -> %q", once, twice)
		}
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name   string
		cell   CellValue
		want   int64
		wantOK bool
	}{
		{
			name:   "absent cell",
			cell:   AbsentCell(),
			wantOK: false,
		},
		{
			name:   "plain integral number",
			cell:   NumberCell(52000),
			want:   52000,
			wantOK: true,
		},
		{
			name:   "fractional number rounds half-up",
			cell:   NumberCell(2.5),
			want:   3,
			wantOK: true,
		},
		{
			name:   "fractional number rounds down below half",
			cell:   NumberCell(2.4),
			want:   2,
			wantOK: true,
		},
		{
			name:   "currency prefix with dot grouping",
			cell:   TextCell("Rp 1.250.000"),
			want:   1250000,
			wantOK: true,
		},
		{
			name:   "lowercase prefix without space",
			cell:   TextCell("rp10.000"),
			want:   10000,
			wantOK: true,
		},
		{
			name:   "uppercase prefix",
			cell:   TextCell("RP 5.000"),
			want:   5000,
			wantOK: true,
		},
		{
			name:   "dot grouping with comma decimals",
			cell:   TextCell("1.234,56"),
			want:   1235,
			wantOK: true,
		},
		{
			name:   "comma-only input groups thousands",
			cell:   TextCell("1,250"),
			want:   1250,
			wantOK: true,
		},
		{
			name:   "comma-only never marks decimals",
			cell:   TextCell("3,5"),
			want:   35,
			wantOK: true,
		},
		{
			name:   "dot-only input groups thousands",
			cell:   TextCell("12.345"),
			want:   12345,
			wantOK: true,
		},
		{
			name:   "bare digits",
			cell:   TextCell("52000"),
			want:   52000,
			wantOK: true,
		},
		{
			name:   "blank text",
			cell:   TextCell("   "),
			wantOK: false,
		},
		{
			name:   "unparseable text",
			cell:   TextCell("hubungi admin"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePrice(tt.cell)
			if ok != tt.wantOK {
				t.Fatalf("NormalizePrice(%v) ok = %v, want %v", tt.cell, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NormalizePrice(%v) = %d, want %d", tt.cell, got, tt.want)
			}
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{in: 0.5, want: 1},
		{in: 1.5, want: 2},
		{in: 2.5, want: 3},
		{in: 2.49, want: 2},
		{in: -0.5, want: 0},
		{in: 7, want: 7},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
