package domain

// DiscountTier is a bulk-discount rule: buying at least Quantity units of a
// product earns Rate off that line.
type DiscountTier struct {
	Quantity int     `json:"quantity" validate:"gt=0"`
	Rate     float64 `json:"rate" validate:"gte=0,lte=1"`
}

// MaxApplicableRate resolves the best discount rate for the requested quantity:
// the maximum rate among tiers whose threshold is met. Tiers carry no ordering
// invariant, so every tier is scanned. Returns 0 when nothing qualifies.
func MaxApplicableRate(tiers []DiscountTier, quantity int) float64 {
	best := 0.0
	for _, t := range tiers {
		if quantity >= t.Quantity && t.Rate > best {
			best = t.Rate
		}
	}
	return best
}

// MaxDiscountRate returns the largest rate across all tiers regardless of
// quantity, for "up to X% off" display.
func MaxDiscountRate(tiers []DiscountTier) float64 {
	best := 0.0
	for _, t := range tiers {
		if t.Rate > best {
			best = t.Rate
		}
	}
	return best
}
