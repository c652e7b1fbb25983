package pricing

// Pricelist and add-on files are commonly filled in thousands ("150" meaning
// Rp 150.000). Amounts below the threshold are taken as abbreviated and scaled
// up. This is a deliberate business approximation carried over from how the
// reference files are maintained, not a parsing guarantee.
const (
	DefaultRescaleThreshold  int64 = 1_000_000
	DefaultRescaleMultiplier int64 = 1000
)

// Rescaler expands abbreviated amounts loaded from the reference tables. It is
// applied to every pricelist and add-on price and never to resolver output,
// stock quantities, or the operator-supplied discount.
type Rescaler struct {
	Threshold  int64
	Multiplier int64
}

// DefaultRescaler returns the production thresholds.
func DefaultRescaler() Rescaler {
	return Rescaler{Threshold: DefaultRescaleThreshold, Multiplier: DefaultRescaleMultiplier}
}

// Apply rescales amounts strictly below the threshold; amounts at or above it
// pass through untouched.
func (r Rescaler) Apply(price int64) int64 {
	if price < r.Threshold {
		return price * r.Multiplier
	}
	return price
}
