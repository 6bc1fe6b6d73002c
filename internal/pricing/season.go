package pricing

import "time"

// Season labels the four retail seasons (northern hemisphere).
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// SeasonalAdvice carries the recommended discount band and the minimum
// acceptable margin floor for a season.
type SeasonalAdvice struct {
	Season         Season  `json:"season"`
	MinDiscount    float64 `json:"min_discount"`
	MaxDiscount    float64 `json:"max_discount"`
	MinMarginFloor float64 `json:"min_margin_floor"`
}

// Winter carries the deepest band (end-of-season sales); spring and
// autumn stay shallow.
var seasonalBands = map[Season]SeasonalAdvice{
	Spring: {Season: Spring, MinDiscount: 10, MaxDiscount: 20, MinMarginFloor: 12},
	Summer: {Season: Summer, MinDiscount: 15, MaxDiscount: 25, MinMarginFloor: 10},
	Autumn: {Season: Autumn, MinDiscount: 10, MaxDiscount: 20, MinMarginFloor: 12},
	Winter: {Season: Winter, MinDiscount: 20, MaxDiscount: 30, MinMarginFloor: 8},
}

// SeasonFor maps a date to its season's discount guidance. A pure month
// lookup: no state, no clock of its own.
func SeasonFor(date time.Time) SeasonalAdvice {
	var s Season
	switch date.Month() {
	case time.March, time.April, time.May:
		s = Spring
	case time.June, time.July, time.August:
		s = Summer
	case time.September, time.October, time.November:
		s = Autumn
	default:
		s = Winter
	}
	return seasonalBands[s]
}
