package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

func sampleRows() []pricing.OutputRow {
	return []pricing.OutputRow{
		{Row: 6, ProductID: "100001", SkuID: "200001", Price: 52_000, Stock: 12, HasStock: true},
		{Row: 7, ProductID: "100002", SkuID: "200002", Price: 48_000},
	}
}

func openArtifact(t *testing.T, artifact *Artifact) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(artifact.Data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFreshWorkbookLayout(t *testing.T) {
	builder := &FreshWorkbook{Tier: pricing.TierM3}
	artifact, err := builder.Build(sampleRows())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if artifact.Name != "product_discount_output_M3.xlsx" {
		t.Errorf("artifact name = %q, want %q", artifact.Name, "product_discount_output_M3.xlsx")
	}
	if artifact.ContentType != xlsxContentType {
		t.Errorf("content type = %q, want %q", artifact.ContentType, xlsxContentType)
	}

	f := openArtifact(t, artifact)
	sheet := f.GetSheetName(0)

	for i, want := range outputHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, pricing.OutputHeaderRow)
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", cell, err)
		}
		if got != want {
			t.Errorf("header %s = %q, want %q", cell, got, want)
		}
	}

	cases := []struct {
		cell string
		want string
	}{
		{"A2", "100001"},
		{"B2", "200001"},
		{"C2", "52000"},
		{"D2", "12"},
		{"E2", ""},
		{"A3", "100002"},
		{"C3", "48000"},
		{"D3", ""},
		{"E3", ""},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue(sheet, tc.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", tc.cell, err)
		}
		if got != tc.want {
			t.Errorf("cell %s = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestFreshWorkbookEmptyRun(t *testing.T) {
	builder := &FreshWorkbook{Tier: pricing.TierM4}
	artifact, err := builder.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if artifact.Name != "product_discount_output_M4.xlsx" {
		t.Errorf("artifact name = %q, want tier M4 name", artifact.Name)
	}

	f := openArtifact(t, artifact)
	sheet := f.GetSheetName(0)

	got, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue(A1) error = %v", err)
	}
	if !strings.HasPrefix(got, "Product_id") {
		t.Errorf("A1 = %q, want Product_id header", got)
	}
	if got, _ := f.GetCellValue(sheet, "A2"); got != "" {
		t.Errorf("A2 = %q, want empty data area", got)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "empty defaults to fresh", input: "", want: ModeFresh},
		{name: "fresh", input: "fresh", want: ModeFresh},
		{name: "template", input: "template", want: ModeTemplate},
		{name: "inplace", input: "inplace", want: ModeInPlace},
		{name: "chunked", input: "chunked", want: ModeChunked},
		{name: "unknown", input: "parts", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) error = nil, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
