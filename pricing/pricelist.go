package pricing

// TierPrices holds the amounts one base SKU carries per platform tier. Sparse:
// only tiers that parsed from the pricelist are present.
type TierPrices map[Tier]int64

// Pricelist maps base SKUs to their tier prices. Built once per run from the
// pricelist workbook and treated as read-only afterwards.
type Pricelist map[string]TierPrices

// LoadPricelist builds the base-SKU price table from a pricelist sheet. The
// header is validated at the contractual row and must carry a SKU column plus
// both tier columns. Data rows contribute whichever tier amounts parse; rows
// whose key is blank or whose tiers all fail to parse store nothing. Duplicate
// SKUs merge last-write-wins per tier, so re-exports that append corrected
// rows override earlier ones.
func LoadPricelist(sheet Sheet, cfg Config) (Pricelist, error) {
	fields := make([]Field, 0, len(cfg.PricelistTiers)+1)
	fields = append(fields, cfg.PricelistSkuField)
	for _, tc := range cfg.PricelistTiers {
		fields = append(fields, Field{Name: string(tc.Tier), Synonyms: tc.Synonyms})
	}

	cols, headerRow, err := ResolveColumns(sheet, SingleRow(cfg.PricelistHeaderRow), fields)
	if err != nil {
		return nil, err
	}
	skuCol := cols[cfg.PricelistSkuField.Name]

	list := make(Pricelist)
	for r := headerRow + 1; r <= sheet.MaxRow(); r++ {
		sku := NormalizeIdentifier(sheet.Cell(r, skuCol))
		if sku == "" {
			continue
		}
		for _, tc := range cfg.PricelistTiers {
			price, ok := NormalizePrice(sheet.Cell(r, cols[string(tc.Tier)]))
			if !ok {
				continue
			}
			entry := list[sku]
			if entry == nil {
				entry = make(TierPrices, len(cfg.PricelistTiers))
				list[sku] = entry
			}
			entry[tc.Tier] = cfg.Rescaler.Apply(price)
		}
	}
	return list, nil
}
