package export

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

func buildTemplateBytes(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		t.Fatalf("MergeCell() error = %v", err)
	}
	if err := f.SetCellValue(sheet, "A1", "TEMPLATE DISKON PRODUK"); err != nil {
		t.Fatalf("SetCellValue() error = %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	return buf.Bytes()
}

func TestTemplateOverlayKeepsBanner(t *testing.T) {
	builder := &TemplateOverlay{Template: buildTemplateBytes(t), Tier: pricing.TierM3}
	artifact, err := builder.Build(sampleRows())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	f := openArtifact(t, artifact)
	sheet := f.GetSheetName(0)

	if got, _ := f.GetCellValue(sheet, "A1"); got != "TEMPLATE DISKON PRODUK" {
		t.Errorf("A1 = %q, want template banner preserved", got)
	}

	cases := []struct {
		cell string
		want string
	}{
		{"A2", "100001"},
		{"B2", "200001"},
		{"C2", "52000"},
		{"D2", "12"},
		{"C3", "48000"},
		{"D3", ""},
	}
	for _, tc := range cases {
		if got, _ := f.GetCellValue(sheet, tc.cell); got != tc.want {
			t.Errorf("cell %s = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestMergeAwareWriterRedirect(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.MergeCell(sheet, "B2", "C3"); err != nil {
		t.Fatalf("MergeCell() error = %v", err)
	}

	w, err := newMergeAwareWriter(f, sheet)
	if err != nil {
		t.Fatalf("newMergeAwareWriter() error = %v", err)
	}

	// a write into the middle of the merged range lands on the anchor
	if err := w.set(3, 3, "redirected"); err != nil {
		t.Fatalf("set() error = %v", err)
	}
	if got, _ := f.GetCellValue(sheet, "B2"); got != "redirected" {
		t.Errorf("anchor B2 = %q, want %q", got, "redirected")
	}

	// writes outside any merged range land where they are aimed
	if err := w.set(1, 5, "plain"); err != nil {
		t.Fatalf("set() error = %v", err)
	}
	if got, _ := f.GetCellValue(sheet, "A5"); got != "plain" {
		t.Errorf("A5 = %q, want %q", got, "plain")
	}
}
