package pricing

import "math"

// FeeRule holds the payment-processing parameters applied to the pre-fee
// price: a percentage rate, a fixed amount, and a tax rate charged on the
// combined fee (not on the price).
type FeeRule struct {
	PercentageFee float64
	FixedFee      float64
	TaxRate       float64
}

// FeeOn returns the full fee this rule charges on a pre-fee price.
func (r FeeRule) FeeOn(priceBeforeFee float64) float64 {
	fee := Sanitize(priceBeforeFee)*Sanitize(r.PercentageFee) + Sanitize(r.FixedFee)
	return fee + fee*Sanitize(r.TaxRate)
}

// Breakdown is the immutable result of one pricing computation. Every
// input change produces a fresh breakdown; none is ever mutated in place.
type Breakdown struct {
	DirectCost    float64 `json:"direct_cost"`
	MarketingCost float64 `json:"marketing_cost"`
	ProfitAmount  float64 `json:"profit_amount"`
	PaymentFee    float64 `json:"payment_fee"`
	FinalPrice    float64 `json:"final_price"`
}

// ComputeFinalPrice derives the consumer-facing price in a fixed order:
// cost base, profit on the base, fee on the pre-fee price, final price.
//
// fixedCostShare exists for callers that track the overhead allocation
// outside the line set; when the composer already folded it into
// directCost, pass 0 — never feed it through both paths.
//
// A nil feeRule means no payment method is configured: the fee is 0 and
// the caller should surface that as a data-quality warning, since the
// final price is then only a lower bound.
func ComputeFinalPrice(directCost, marketingCost, fixedCostShare, profitMarginPercent float64, feeRule *FeeRule) Breakdown {
	direct := Sanitize(directCost)
	marketing := Sanitize(marketingCost)
	costBase := direct + Sanitize(fixedCostShare) + marketing

	profit := costBase * Sanitize(profitMarginPercent) / 100
	priceBeforeFee := costBase + profit

	fee := 0.0
	if feeRule != nil {
		fee = feeRule.FeeOn(priceBeforeFee)
	}

	return Breakdown{
		DirectCost:    clamp(direct),
		MarketingCost: clamp(marketing),
		ProfitAmount:  clamp(profit),
		PaymentFee:    clamp(fee),
		FinalPrice:    clamp(priceBeforeFee + fee),
	}
}

// DisplayPrice rounds a final price up to the nearest multiple of 5
// currency units. Presentation only: the result must never feed back
// into stored or compared values.
func DisplayPrice(finalPrice float64) float64 {
	return math.Ceil(Sanitize(finalPrice)/5) * 5
}
