package pricing

// AddonTable maps canonical add-on codes to their surcharge. Same lifecycle as
// Pricelist: built once per run, read-only afterwards.
type AddonTable map[string]int64

// LoadAddonTable builds the add-on surcharge table. Add-on files float their
// header anywhere in the top rows, so the header is scanned for rather than
// fixed. Codes are canonicalized (trim + uppercase); rows with a blank code or
// an unparseable price are skipped; duplicate codes last-write-wins.
func LoadAddonTable(sheet Sheet, cfg Config) (AddonTable, error) {
	fields := []Field{cfg.AddonCodeField, cfg.AddonPriceField}
	cols, headerRow, err := ResolveColumns(sheet, cfg.AddonHeaderRows, fields)
	if err != nil {
		return nil, err
	}
	codeCol := cols[cfg.AddonCodeField.Name]
	priceCol := cols[cfg.AddonPriceField.Name]

	table := make(AddonTable)
	for r := headerRow + 1; r <= sheet.MaxRow(); r++ {
		code := NormalizeAddonCode(NormalizeIdentifier(sheet.Cell(r, codeCol)))
		if code == "" {
			continue
		}
		price, ok := NormalizePrice(sheet.Cell(r, priceCol))
		if !ok {
			continue
		}
		table[code] = cfg.Rescaler.Apply(price)
	}
	return table, nil
}
