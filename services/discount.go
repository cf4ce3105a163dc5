package services

type DiscountResult struct {
	DiscountAmount float64 `json:"discount_amount"`
	FinalTotal     float64 `json:"final_total"`
}

// ResolveDiscount combines the tier benefit with an optional promo
// discount. Tier rates and promo codes are alternative rewards, not
// stacking ones: the customer gets whichever single rate is better.
func ResolveDiscount(subtotal float64, tier string, promoPercent *float64) DiscountResult {
	if subtotal <= 0 {
		final := subtotal
		if final < 0 {
			final = 0
		}
		return DiscountResult{DiscountAmount: 0, FinalTotal: final}
	}

	percent := TierDiscountPercent(tier)
	if promoPercent != nil && *promoPercent > percent {
		percent = *promoPercent
	}

	discount := subtotal * percent / 100
	final := subtotal - discount
	if final < 0 {
		final = 0
	}
	return DiscountResult{DiscountAmount: discount, FinalTotal: final}
}
