package pricing

import (
	"math"
	"sort"
)

// Entry is one catalog item's price pair. A nil price was never set;
// only entries with both values strictly positive join margin math, but
// every entry counts toward the total.
type Entry struct {
	ID    int64
	Name  string
	Cost  *float64
	Price *float64
}

// LowMarginItem is a catalog item whose margin sits below the low-margin
// threshold. Margin is reported with one decimal place.
type LowMarginItem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Margin float64 `json:"margin"`
}

// PortfolioAnalytics is the aggregate profitability view over a seller's
// whole catalog at a point in time. Recomputed wholesale on every catalog
// change; there is no incremental update.
type PortfolioAnalytics struct {
	TotalItems     int             `json:"total_items"`
	ValidItems     int             `json:"valid_items"`
	AverageMargin  float64         `json:"average_margin"`
	LowestMargin   float64         `json:"lowest_margin"`
	LowestProfit   float64         `json:"lowest_profit"`
	MaxCAC         float64         `json:"max_cac"`
	SafeCAC        float64         `json:"safe_cac"`
	LowMarginItems []LowMarginItem `json:"low_margin_items"`
}

// Aggregate recomputes catalog-wide profitability from scratch. Zero
// valid entries is a defined terminal state: every metric reports zero
// and LowMarginItems stays empty. Callers distinguish that from a real
// zero-valued metric via ValidItems.
func Aggregate(entries []Entry) PortfolioAnalytics {
	out := PortfolioAnalytics{
		TotalItems:     len(entries),
		LowMarginItems: []LowMarginItem{},
	}

	var marginSum float64
	low := []LowMarginItem{}
	for _, e := range entries {
		if e.Cost == nil || e.Price == nil {
			continue
		}
		cost, price := *e.Cost, *e.Price
		if cost <= 0 || price <= 0 {
			continue
		}

		margin := (price - cost) / price * 100
		profit := price - cost

		if out.ValidItems == 0 || margin < out.LowestMargin {
			out.LowestMargin = margin
		}
		if out.ValidItems == 0 || profit < out.LowestProfit {
			out.LowestProfit = profit
		}
		out.ValidItems++
		marginSum += margin

		// Strictly below the threshold; a margin at exactly 10% is fine.
		if margin < LowMarginThreshold {
			low = append(low, LowMarginItem{
				ID:     e.ID,
				Name:   e.Name,
				Margin: math.Round(margin*10) / 10,
			})
		}
	}

	if out.ValidItems == 0 {
		return out
	}

	out.AverageMargin = marginSum / float64(out.ValidItems)
	out.MaxCAC = math.Max(0, out.LowestProfit)
	out.SafeCAC = math.Max(0, out.MaxCAC-PortfolioCACBuffer)

	sort.Slice(low, func(i, j int) bool { return low[i].Margin < low[j].Margin })
	if len(low) > LowMarginReportCap {
		low = low[:LowMarginReportCap]
	}
	out.LowMarginItems = low

	return out
}
