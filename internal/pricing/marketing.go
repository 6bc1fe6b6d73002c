package pricing

// MarketingMode selects how a marketing cost input is interpreted.
type MarketingMode string

const (
	MarketingFixed      MarketingMode = "fixed"
	MarketingPercentage MarketingMode = "percentage"
)

// MarketingInput is a raw marketing cost: an absolute amount, or a
// percentage of the direct-cost total.
type MarketingInput struct {
	Amount float64
	Mode   MarketingMode
}

// ResolveMarketing turns a marketing input into an absolute amount.
// In percentage mode with no direct costs yet there is nothing to take a
// percentage of, so the result is 0.
func ResolveMarketing(in MarketingInput, directCost float64) float64 {
	amount := Sanitize(in.Amount)
	if in.Mode == MarketingPercentage {
		return Sanitize(directCost) * amount / 100
	}
	return amount
}
