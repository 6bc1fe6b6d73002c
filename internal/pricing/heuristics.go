package pricing

// Every analytics heuristic lives in this one table so the numbers are
// auditable in one place instead of re-derived at call sites.
const (
	// Acquisition-cost analysis, per offer.
	ConversionRate          = 0.025 // assumed paid-traffic conversion rate
	IdealCPCRate            = 0.05  // ideal cost-per-click as a share of the final price
	IdealCPCCap             = 5.0
	MaxCACProfitShare       = 0.4
	OfferCACBuffer          = 10.0 // safety buffer under the profit amount
	MinCACProfitShare       = 0.15
	MinCACIdealShare        = 0.7
	SuggestedCACProfitShare = 0.3

	// Discount safety, catalog-wide.
	DiscountSafetyBuffer    = 5.0
	SuggestedDiscountFactor = 0.7

	// Portfolio analysis, catalog-wide. PortfolioCACBuffer is deliberately
	// distinct from OfferCACBuffer: the two bounds come from different
	// calculations and were never unified.
	PortfolioCACBuffer = 15.0
	LowMarginThreshold = 10.0
	LowMarginReportCap = 5
)
