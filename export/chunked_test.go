package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

func readZipEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	entries := make(map[string][]byte, len(reader.File))
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open zip entry %s: %v", file.Name, err)
		}
		payload, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read zip entry %s: %v", file.Name, err)
		}
		entries[file.Name] = payload
	}
	return entries
}

func TestChunkedWorkbooksSplitsRows(t *testing.T) {
	rows := make([]pricing.OutputRow, 5)
	for i := range rows {
		rows[i] = pricing.OutputRow{
			Row:       6 + i,
			ProductID: fmt.Sprintf("10000%d", i+1),
			SkuID:     fmt.Sprintf("20000%d", i+1),
			Price:     int64(50_000 + i),
		}
	}

	builder := &ChunkedWorkbooks{Tier: pricing.TierM3, ChunkSize: 2}
	artifact, err := builder.Build(rows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if artifact.Name != "product_discount_output_M3_parts.zip" {
		t.Errorf("artifact name = %q, want parts zip name", artifact.Name)
	}
	if artifact.ContentType != zipContentType {
		t.Errorf("content type = %q, want %q", artifact.ContentType, zipContentType)
	}

	entries := readZipEntries(t, artifact.Data)
	wantNames := []string{
		"product_discount_output_M3_part01.xlsx",
		"product_discount_output_M3_part02.xlsx",
		"product_discount_output_M3_part03.xlsx",
	}
	if len(entries) != len(wantNames) {
		t.Fatalf("zip entries = %d, want %d", len(entries), len(wantNames))
	}
	for _, name := range wantNames {
		if _, ok := entries[name]; !ok {
			t.Errorf("zip missing entry %q", name)
		}
	}

	// every part restarts data at row 2 under the same headers
	part2, err := excelize.OpenReader(bytes.NewReader(entries[wantNames[1]]))
	if err != nil {
		t.Fatalf("OpenReader(part02) error = %v", err)
	}
	defer part2.Close()

	sheet := part2.GetSheetName(0)
	if got, _ := part2.GetCellValue(sheet, "A2"); got != "100003" {
		t.Errorf("part02 A2 = %q, want %q", got, "100003")
	}
	if got, _ := part2.GetCellValue(sheet, "A4"); got != "" {
		t.Errorf("part02 A4 = %q, want empty beyond chunk", got)
	}

	// the last part carries the remainder
	part3, err := excelize.OpenReader(bytes.NewReader(entries[wantNames[2]]))
	if err != nil {
		t.Fatalf("OpenReader(part03) error = %v", err)
	}
	defer part3.Close()

	sheet = part3.GetSheetName(0)
	if got, _ := part3.GetCellValue(sheet, "A2"); got != "100005" {
		t.Errorf("part03 A2 = %q, want %q", got, "100005")
	}
	if got, _ := part3.GetCellValue(sheet, "A3"); got != "" {
		t.Errorf("part03 A3 = %q, want single-row remainder", got)
	}
}

func TestChunkedWorkbooksEmptyRun(t *testing.T) {
	builder := &ChunkedWorkbooks{Tier: pricing.TierM4}
	artifact, err := builder.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	entries := readZipEntries(t, artifact.Data)
	if len(entries) != 1 {
		t.Fatalf("zip entries = %d, want one headers-only part", len(entries))
	}
	if _, ok := entries["product_discount_output_M4_part01.xlsx"]; !ok {
		t.Errorf("zip missing headers-only part01")
	}
}

func TestChunkRows(t *testing.T) {
	rows := make([]pricing.OutputRow, 4)

	cases := []struct {
		name string
		size int
		want []int
	}{
		{name: "even split", size: 2, want: []int{2, 2}},
		{name: "remainder", size: 3, want: []int{3, 1}},
		{name: "single chunk", size: 10, want: []int{4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := chunkRows(rows, tc.size)
			if len(chunks) != len(tc.want) {
				t.Fatalf("chunkRows() chunks = %d, want %d", len(chunks), len(tc.want))
			}
			for i, chunk := range chunks {
				if len(chunk) != tc.want[i] {
					t.Errorf("chunk %d size = %d, want %d", i, len(chunk), tc.want[i])
				}
			}
		})
	}
}
