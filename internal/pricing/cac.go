package pricing

import "math"

// CACAnalysis bounds the advertising spend one acquired customer can
// carry for a single offer.
type CACAnalysis struct {
	IdealCPC       float64 `json:"ideal_cpc"`
	ConversionRate float64 `json:"conversion_rate"`
	MinCAC         float64 `json:"min_cac"`
	MaxCAC         float64 `json:"max_cac"`
	SuggestedCAC   float64 `json:"suggested_cac"`
	ROIPercent     float64 `json:"roi_percent"`
}

// AnalyzeCAC derives acquisition-cost bounds from the profit amount and
// final price of one offer. ok is false when the offer is not profitable
// enough to buy traffic for (profit or price not strictly positive);
// callers should surface that as an explicit signal, never as a zeroed
// result.
func AnalyzeCAC(profitAmount, finalPrice float64) (analysis CACAnalysis, ok bool) {
	if profitAmount <= 0 || finalPrice <= 0 {
		return CACAnalysis{}, false
	}

	idealCPC := math.Min(finalPrice*IdealCPCRate, IdealCPCCap)
	idealCAC := idealCPC / ConversionRate

	// The lower of "40% of profit" and "profit minus the safety buffer",
	// floored at zero for thin profits.
	maxCAC := math.Min(profitAmount*MaxCACProfitShare, profitAmount-OfferCACBuffer)
	if maxCAC < 0 {
		maxCAC = 0
	}

	minCAC := math.Min(profitAmount*MinCACProfitShare, idealCAC*MinCACIdealShare)
	suggested := math.Min(idealCAC, profitAmount*SuggestedCACProfitShare)

	roi := 0.0
	if suggested > 0 {
		roi = (profitAmount - suggested) / suggested * 100
	}

	return CACAnalysis{
		IdealCPC:       clamp(idealCPC),
		ConversionRate: ConversionRate,
		MinCAC:         clamp(minCAC),
		MaxCAC:         clamp(maxCAC),
		SuggestedCAC:   clamp(suggested),
		ROIPercent:     clamp(roi),
	}, true
}
