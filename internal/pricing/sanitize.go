package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Sanitize coerces an arbitrary value into a safe, non-negative, finite
// number. nil, NaN, infinities, negatives and unparseable strings all
// degrade to 0. Partial or garbage input is the normal mid-edit state of
// a pricing form, so this function never fails and never reports.
func Sanitize(v any) float64 {
	var n float64

	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint:
		n = float64(x)
	case uint64:
		n = float64(x)
	case json.Number:
		n = parseNumeric(string(x))
	case string:
		n = parseNumeric(x)
	default:
		return 0
	}

	return clamp(n)
}

// parseNumeric strips everything but digits, '.' and '-' before parsing,
// so currency symbols and thousand separators pass through harmlessly.
func parseNumeric(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// clamp degrades non-finite or negative intermediates to 0 so a NaN or
// infinity anywhere in a calculation chain never reaches a caller.
func clamp(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
