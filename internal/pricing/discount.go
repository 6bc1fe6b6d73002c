package pricing

import "math"

// DiscountAnalysis bounds the discount the whole catalog can absorb.
// Past DangerZoneStart at least one item is mathematically guaranteed to
// sell below cost.
type DiscountAnalysis struct {
	MaxSafeDiscount   float64 `json:"max_safe_discount"`
	SuggestedDiscount float64 `json:"suggested_discount"`
	DangerZoneStart   float64 `json:"danger_zone_start"`
}

// AnalyzeDiscount derives the safe discount band from the thinnest margin
// across the catalog. A single global bound, not per item.
func AnalyzeDiscount(lowestMargin float64) DiscountAnalysis {
	maxSafe := math.Max(0, lowestMargin-DiscountSafetyBuffer)
	return DiscountAnalysis{
		MaxSafeDiscount:   maxSafe,
		SuggestedDiscount: maxSafe * SuggestedDiscountFactor,
		DangerZoneStart:   maxSafe + DiscountSafetyBuffer,
	}
}
