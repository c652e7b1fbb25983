package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// Generates the three sample workbooks the pipeline consumes: a marketplace
// mass-update input, a distributor pricelist and an addon mapping. The input
// deliberately contains rows that cannot be priced (unknown base SKU, unknown
// addon, blank seller SKU) so a demo run also produces an issue list.

const (
	baseSkuCount  = 40
	inputRowCount = 120
)

type catalogItem struct {
	Code  string
	M3    int
	M4    int
	HasM4 bool
}

var addonCatalog = []struct {
	Code  string
	Price int
}{
	{"PC", 25},
	{"RGB", 150},
	{"PSU", 350},
	{"FAN", 85},
	{"SSD", 520},
}

func main() {
	gofakeit.Seed(0)

	dataDir := filepath.Join("data", "samples")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	catalog := newCatalog()

	pricelistPath := filepath.Join(dataDir, "pricelist.xlsx")
	if err := writePricelist(pricelistPath, catalog); err != nil {
		log.Fatalf("Failed to write %s: %v", pricelistPath, err)
	}

	addonPath := filepath.Join(dataDir, "addon_mapping.xlsx")
	if err := writeAddonMapping(addonPath); err != nil {
		log.Fatalf("Failed to write %s: %v", addonPath, err)
	}

	inputPath := filepath.Join(dataDir, "input_massal.xlsx")
	if err := writeInput(inputPath, catalog); err != nil {
		log.Fatalf("Failed to write %s: %v", inputPath, err)
	}

	fmt.Printf("Generated %d base SKUs, %d addon codes, %d input rows\n",
		len(catalog), len(addonCatalog), inputRowCount)
	fmt.Printf("  %s\n  %s\n  %s\n", pricelistPath, addonPath, inputPath)
	fmt.Println("Run: pricegen -input=" + inputPath + " -pricelist=" + pricelistPath + " -addons=" + addonPath)
}

// newCatalog builds the shared base-SKU list. Prices are in warehouse
// thousands, the magnitude the rescaler multiplies up on load. A few SKUs
// carry no M4 price so tier M4 runs also surface issues.
func newCatalog() []catalogItem {
	catalog := make([]catalogItem, baseSkuCount)
	for i := range catalog {
		m3 := gofakeit.Number(80, 900)
		item := catalogItem{
			Code:  fmt.Sprintf("%s-%03d", strings.ToUpper(gofakeit.LetterN(3)), gofakeit.Number(100, 999)),
			M3:    m3,
			M4:    m3 - gofakeit.Number(5, 40),
			HasM4: i%9 != 4,
		}
		catalog[i] = item
	}
	return catalog
}

func writePricelist(path string, catalog []catalogItem) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	setCell(f, sheet, "A", 1, "PRICELIST DISTRIBUTOR")
	setCell(f, sheet, "A", pricing.PricelistHeaderRow, "KODEBARANG")
	setCell(f, sheet, "B", pricing.PricelistHeaderRow, "NAMA BARANG")
	setCell(f, sheet, "C", pricing.PricelistHeaderRow, "M3")
	setCell(f, sheet, "D", pricing.PricelistHeaderRow, "M4")

	for i, item := range catalog {
		row := pricing.PricelistHeaderRow + 1 + i
		setCell(f, sheet, "A", row, item.Code)
		setCell(f, sheet, "B", row, strings.ToUpper(gofakeit.ProductName()))
		setCell(f, sheet, "C", row, item.M3)
		if item.HasM4 {
			setCell(f, sheet, "D", row, item.M4)
		}
	}
	return f.SaveAs(path)
}

func writeAddonMapping(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	// The addon file has no fixed header row in the wild, only "somewhere
	// near the top". Put two note lines above it to exercise the scan.
	setCell(f, sheet, "A", 1, "Mapping kode addon ke harga")
	setCell(f, sheet, "A", 2, "Harga dalam ribuan rupiah")
	setCell(f, sheet, "A", 3, "KODE")
	setCell(f, sheet, "B", 3, "HARGA")

	for i, addon := range addonCatalog {
		row := 4 + i
		setCell(f, sheet, "A", row, addon.Code)
		setCell(f, sheet, "B", row, addon.Price)
	}
	return f.SaveAs(path)
}

func writeInput(path string, catalog []catalogItem) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	setCell(f, sheet, "A", 1, "Template Update Massal Produk")
	setCell(f, sheet, "A", 2, "Jangan mengubah baris header di bawah ini")

	headers := []string{
		"ID Produk", "ID SKU", "Nama Produk", "Varian",
		"SKU Penjual", "Harga Ritel (Mata Uang Lokal)", "Kuantitas",
	}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		setCell(f, sheet, col, pricing.InputHeaderRow, h)
	}
	setCell(f, sheet, "A", 4, "Contoh: 100001")
	setCell(f, sheet, "A", 5, "Contoh: 100002")

	for i := 0; i < inputRowCount; i++ {
		row := pricing.InputDataStartRow + i
		item := catalog[gofakeit.Number(0, len(catalog)-1)]

		sellerSku := item.Code
		switch {
		case i%17 == 3:
			sellerSku = ""
		case i%23 == 7:
			sellerSku = "ZZZ-999"
		case i%11 == 2:
			sellerSku += "+XX"
		case i%3 == 0:
			addon := addonCatalog[gofakeit.Number(0, len(addonCatalog)-1)]
			sellerSku += "+" + addon.Code
		}

		setCell(f, sheet, "A", row, gofakeit.Number(100_000_000, 999_999_999))
		setCell(f, sheet, "B", row, gofakeit.Number(100_000_000_000, 999_999_999_999))
		setCell(f, sheet, "C", row, gofakeit.ProductName())
		setCell(f, sheet, "D", row, gofakeit.Color())
		if sellerSku != "" {
			setCell(f, sheet, "E", row, sellerSku)
		}
		setCell(f, sheet, "F", row, gofakeit.Number(150, 2500)*1000)
		if i%7 != 5 {
			setCell(f, sheet, "G", row, gofakeit.Number(1, 200))
		}
	}
	return f.SaveAs(path)
}

func setCell(f *excelize.File, sheet, col string, row int, value interface{}) {
	if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value); err != nil {
		log.Fatalf("Failed to set cell %s%d: %v", col, row, err)
	}
}
