package pricing

import (
	"errors"
	"testing"
)

func TestLoadAddonTable(t *testing.T) {
	sheet := sheetOf(
		textRow("Addon Mapping"),
		emptyRow(3),
		textRow("addon_code", "keterangan", "harga"),
		[]CellValue{TextCell("pc"), TextCell("Power cord"), NumberCell(2_000)},
		[]CellValue{TextCell(" RGB "), TextCell("Lampu"), TextCell("Rp 150.000")},
		[]CellValue{TextCell("GPU"), TextCell("Kartu grafis"), NumberCell(1_000_000)},
	)

	table, err := LoadAddonTable(sheet, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadAddonTable returned error: %v", err)
	}

	// Codes canonicalize to trimmed uppercase; prices rescale like the
	// pricelist.
	if got := table["PC"]; got != 2_000_000 {
		t.Errorf("PC = %d, want 2000000", got)
	}
	if got := table["RGB"]; got != 150_000_000 {
		t.Errorf("RGB = %d, want 150000000", got)
	}
	if got := table["GPU"]; got != 1_000_000 {
		t.Errorf("GPU = %d, want 1000000 (at-threshold price stays as is)", got)
	}
	if _, ok := table["pc"]; ok {
		t.Error("lowercase key leaked into the table")
	}
}

func TestLoadAddonTableSkipsAndOverwrites(t *testing.T) {
	sheet := sheetOf(
		textRow("Kode", "harga"),
		[]CellValue{AbsentCell(), NumberCell(1_000)},
		[]CellValue{TextCell("FAN"), TextCell("hubungi admin")},
		[]CellValue{TextCell("PSU"), NumberCell(90_000)},
		[]CellValue{TextCell("psu"), NumberCell(95_000)},
	)

	table, err := LoadAddonTable(sheet, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadAddonTable returned error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1, got %v", len(table), table)
	}
	if got := table["PSU"]; got != 95_000_000 {
		t.Errorf("PSU = %d, want 95000000 (duplicate code last-write-wins)", got)
	}
}

func TestLoadAddonTableHeaderAtScanBound(t *testing.T) {
	rows := make([][]CellValue, 0, 30)
	for i := 0; i < 28; i++ {
		rows = append(rows, textRow("catatan"))
	}
	rows = append(rows, textRow("addon_code", "harga")) // row 29, last scanned
	rows = append(rows, []CellValue{TextCell("PC"), NumberCell(2_000)})

	table, err := LoadAddonTable(sheetOf(rows...), DefaultConfig())
	if err != nil {
		t.Fatalf("LoadAddonTable returned error: %v", err)
	}
	if _, ok := table["PC"]; !ok {
		t.Errorf("header at row 29 not found, table = %v", table)
	}
}

func TestLoadAddonTableHeaderBeyondScanWindow(t *testing.T) {
	rows := make([][]CellValue, 0, 31)
	for i := 0; i < 29; i++ {
		rows = append(rows, textRow("catatan"))
	}
	rows = append(rows, textRow("addon_code", "harga")) // row 30, out of range
	rows = append(rows, []CellValue{TextCell("PC"), NumberCell(2_000)})

	_, err := LoadAddonTable(sheetOf(rows...), DefaultConfig())
	if err == nil {
		t.Fatal("LoadAddonTable succeeded, want header error for row 30")
	}
	var missingErr *MissingColumnsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error type = %T, want *MissingColumnsError", err)
	}
}
