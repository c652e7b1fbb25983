package pricing

// InputLayout is the resolved geometry of an input sheet: where the five
// required columns sit and where data begins.
type InputLayout struct {
	HeaderRow    int
	DataStartRow int

	ProductIDCol int
	SkuIDCol     int
	PriceCol     int
	StockCol     int
	SellerSkuCol int
}

// ResolveInputLayout validates the input template's contractual header row and
// maps the required columns. A failure here is fatal to the whole batch; it is
// the only error path once the lookup tables have loaded.
func ResolveInputLayout(sheet Sheet, cfg Config) (*InputLayout, error) {
	cols, _, err := ResolveColumns(sheet, SingleRow(cfg.InputHeaderRow), cfg.InputFields)
	if err != nil {
		return nil, err
	}
	return &InputLayout{
		HeaderRow:    cfg.InputHeaderRow,
		DataStartRow: cfg.InputDataStartRow,
		ProductIDCol: cols[FieldProductID],
		SkuIDCol:     cols[FieldSkuID],
		PriceCol:     cols[FieldPrice],
		StockCol:     cols[FieldStock],
		SellerSkuCol: cols[FieldSellerSku],
	}, nil
}

// OutputRow is one successfully priced listing row, in input order. Row keeps
// the source position so in-place output can write back to the right cell.
// Stock is passed through from the input, blank when the cell did not parse.
type OutputRow struct {
	Row       int
	ProductID string
	SkuID     string
	Price     int64
	Stock     int64
	HasStock  bool
}

// Issue is one row that could not be priced. OldPrice echoes the price already
// on the listing (0 when unreadable) so operators can see what stays in force.
type Issue struct {
	Row       int
	ProductID string
	SkuID     string
	SellerSku string
	OldPrice  int64
	Reason    FailureReason
}

// BatchResult partitions one full input pass: every non-blank data row lands
// in exactly one of Outputs or Issues. Blank rows are counted, not reported.
type BatchResult struct {
	Outputs     []OutputRow
	Issues      []Issue
	RowsScanned int
	RowsSkipped int
}

// RunBatch walks the input sheet and prices every data row. Rows whose product
// id, SKU id and seller SKU are all empty are skipped silently (trailing
// template rows). Row-level failures are data, not errors: once the layout has
// resolved, the pass never stops.
func RunBatch(sheet Sheet, layout *InputLayout, resolver *Resolver) *BatchResult {
	result := &BatchResult{}
	for r := layout.DataStartRow; r <= sheet.MaxRow(); r++ {
		result.RowsScanned++

		productID := NormalizeIdentifier(sheet.Cell(r, layout.ProductIDCol))
		skuID := NormalizeIdentifier(sheet.Cell(r, layout.SkuIDCol))
		sellerSku := NormalizeIdentifier(sheet.Cell(r, layout.SellerSkuCol))
		if productID == "" && skuID == "" && sellerSku == "" {
			result.RowsSkipped++
			continue
		}

		// The listing's current price is reference data for the issue list,
		// never an input to the computed price.
		oldPrice, _ := NormalizePrice(sheet.Cell(r, layout.PriceCol))

		resolution := resolver.Resolve(sellerSku)
		if !resolution.Resolved() {
			result.Issues = append(result.Issues, Issue{
				Row:       r,
				ProductID: productID,
				SkuID:     skuID,
				SellerSku: sellerSku,
				OldPrice:  oldPrice,
				Reason:    *resolution.Failure,
			})
			continue
		}

		stock, hasStock := NormalizePrice(sheet.Cell(r, layout.StockCol))
		result.Outputs = append(result.Outputs, OutputRow{
			Row:       r,
			ProductID: productID,
			SkuID:     skuID,
			Price:     resolution.Price,
			Stock:     stock,
			HasStock:  hasStock,
		})
	}
	return result
}
