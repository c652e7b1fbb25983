package pricing

import "fmt"

// FailureKind categorizes why a row could not be priced.
type FailureKind string

const (
	FailureEmptySku         FailureKind = "empty_sku"
	FailureBaseSkuNotFound  FailureKind = "base_sku_not_found"
	FailureTierPriceMissing FailureKind = "tier_price_missing"
	FailureAddonNotFound    FailureKind = "addon_not_found"
)

// FailureReason is the per-row failure detail surfaced to operators. Kind is
// the machine-readable category; Message renders the stable Indonesian text
// shown in the issue list.
type FailureReason struct {
	Kind      FailureKind
	AddonCode string // set for FailureAddonNotFound
	Tier      Tier   // set for FailureTierPriceMissing
}

// Message returns the operator-facing reason text.
func (r FailureReason) Message() string {
	switch r.Kind {
	case FailureEmptySku:
		return "SKU Penjual kosong"
	case FailureBaseSkuNotFound:
		return "Base SKU tidak ada di Pricelist"
	case FailureTierPriceMissing:
		return fmt.Sprintf("Harga tier %s tidak ada di Pricelist", r.Tier)
	case FailureAddonNotFound:
		return fmt.Sprintf("Addon '%s' tidak ada di file Addon Mapping", r.AddonCode)
	}
	return string(r.Kind)
}

// PriceResolution is the outcome for one seller SKU: either a resolved price
// with its composition, or a failure reason. Failure==nil means resolved;
// the two never hold together.
type PriceResolution struct {
	Price      int64
	BasePrice  int64
	AddonTotal int64
	Discount   int64
	Failure    *FailureReason
}

// Resolved reports whether a price was computed.
func (p PriceResolution) Resolved() bool { return p.Failure == nil }

// Resolver prices composite seller SKUs against the immutable lookup tables.
// Resolve has no side effects and the tables are never written after loading,
// so a Resolver is safe for concurrent use.
type Resolver struct {
	Pricelist Pricelist
	Addons    AddonTable
	Tier      Tier
	Discount  int64
}

// Resolve prices one composite seller SKU. The first failing step wins: empty
// base, unknown base, missing tier price, then each add-on in SKU order. One
// unknown add-on fails the whole row; there is no partial pricing. The final
// amount is base + add-ons - discount, clamped at zero (a clamp is still a
// successful resolution, not a failure).
func (rv *Resolver) Resolve(sellerSku string) PriceResolution {
	base, addons := DecomposeSku(sellerSku)
	if base == "" {
		return failedResolution(FailureReason{Kind: FailureEmptySku})
	}

	entry, ok := rv.Pricelist[base]
	if !ok {
		return failedResolution(FailureReason{Kind: FailureBaseSkuNotFound})
	}
	basePrice, ok := entry[rv.Tier]
	if !ok {
		return failedResolution(FailureReason{Kind: FailureTierPriceMissing, Tier: rv.Tier})
	}

	var addonTotal int64
	for _, token := range addons {
		code := NormalizeAddonCode(token)
		price, ok := rv.Addons[code]
		if !ok {
			return failedResolution(FailureReason{Kind: FailureAddonNotFound, AddonCode: code})
		}
		addonTotal += price
	}

	final := basePrice + addonTotal - rv.Discount
	if final < 0 {
		final = 0
	}
	return PriceResolution{
		Price:      final,
		BasePrice:  basePrice,
		AddonTotal: addonTotal,
		Discount:   rv.Discount,
	}
}

func failedResolution(r FailureReason) PriceResolution {
	return PriceResolution{Failure: &r}
}
