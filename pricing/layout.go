package pricing

import "fmt"

// Fixed geometry of the marketplace templates and reference files. The input
// template carries two banner rows above its header; the promo upload format
// puts headers at row 1. The pricelist header is contractually at row 2, while
// add-on files float their header somewhere in the top rows.
const (
	InputHeaderRow    = 3
	InputDataStartRow = 6

	OutputHeaderRow    = 1
	OutputDataStartRow = 2

	PricelistHeaderRow = 2

	AddonHeaderFirstRow = 1
	AddonHeaderLastRow  = 29
)

// Tier identifies a platform price column in the pricelist.
type Tier string

const (
	TierM3 Tier = "M3"
	TierM4 Tier = "M4"
)

// ParseTier validates an operator-supplied tier selector.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierM3:
		return TierM3, nil
	case TierM4:
		return TierM4, nil
	}
	return "", fmt.Errorf("unknown price tier %q (expected M3 or M4)", s)
}

// Logical input-sheet field names. They double as the column names operators
// see in header failure messages, so they match the template documentation.
const (
	FieldProductID = "ID Produk"
	FieldSkuID     = "ID SKU"
	FieldPrice     = "Harga Ritel (Mata Uang Lokal)"
	FieldStock     = "Kuantitas"
	FieldSellerSku = "SKU Penjual"
)

// TierColumn binds a tier to the header spellings that label its pricelist
// column.
type TierColumn struct {
	Tier     Tier
	Synonyms []string
}

// Config carries every tunable of the pipeline: the magnitude rescaler plus
// the header synonyms and row positions of the three source tables. Tests
// substitute synonym sets or thresholds here instead of touching package
// state. Field names inside InputFields are fixed contract values; only the
// synonym lists vary per deployment.
type Config struct {
	Rescaler Rescaler

	InputHeaderRow    int
	InputDataStartRow int
	InputFields       []Field

	PricelistHeaderRow int
	PricelistSkuField  Field
	PricelistTiers     []TierColumn

	AddonHeaderRows RowRange
	AddonCodeField  Field
	AddonPriceField Field
}

// DefaultConfig returns the production layout: the synonym lists collected
// from the template variants operators actually upload.
func DefaultConfig() Config {
	return Config{
		Rescaler: DefaultRescaler(),

		InputHeaderRow:    InputHeaderRow,
		InputDataStartRow: InputDataStartRow,
		InputFields: []Field{
			{Name: FieldProductID, Synonyms: []string{"ID Produk", "ID PRODUK", "Product ID", "Product_Id", "Product_id"}},
			{Name: FieldSkuID, Synonyms: []string{"ID SKU", "ID_SKU", "Sku Id", "SKU ID", "SKU_Id", "SKU_id"}},
			{Name: FieldPrice, Synonyms: []string{"Harga Ritel (Mata Uang Lokal)", "Harga Ritel", "Harga", "PRICE"}},
			{Name: FieldStock, Synonyms: []string{"Kuantitas", "Qty", "QTY", "Stock", "Stok"}},
			{Name: FieldSellerSku, Synonyms: []string{"SKU Penjual", "SKU_PENJUAL", "SKU PENJUAL", "Seller SKU", "SKU Seller"}},
		},

		PricelistHeaderRow: PricelistHeaderRow,
		PricelistSkuField: Field{
			Name:     "KODEBARANG",
			Synonyms: []string{"KODEBARANG", "KODE BARANG", "SKU", "SKU NO", "SKU_NO", "KODEBARANG "},
		},
		PricelistTiers: []TierColumn{
			{Tier: TierM3, Synonyms: []string{"M3"}},
			{Tier: TierM4, Synonyms: []string{"M4"}},
		},

		AddonHeaderRows: RowRange{First: AddonHeaderFirstRow, Last: AddonHeaderLastRow},
		AddonCodeField: Field{
			Name:     "addon_code",
			Synonyms: []string{"addon_code", "ADDON_CODE", "Addon Code", "Kode", "KODE", "KODE ADDON", "KODE_ADDON"},
		},
		AddonPriceField: Field{
			Name:     "harga",
			Synonyms: []string{"harga", "HARGA", "Price", "PRICE", "Harga"},
		},
	}
}
